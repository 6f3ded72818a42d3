package calculator

import (
	"cgpa-calculator/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func subjects(pairs ...string) []models.SubjectEntry {
	var out []models.SubjectEntry
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.SubjectEntry{Grade: pairs[i], Credits: pairs[i+1]})
	}
	return out
}

func TestComputeSemesterResult(t *testing.T) {
	table := models.DefaultGradeTable()

	tests := []struct {
		name     string
		subjects []models.SubjectEntry
		sgpa     float64
		credits  float64
		err      string
	}{
		{"weighted mean", subjects("A", "4", "B+", "3"), 68.0 / 7.0, 7, ""},
		{"single subject", subjects("A+", "3"), 10, 3, ""},
		{"grade is normalized", subjects(" b+ ", " 2 "), 8, 2, ""},
		{"fractional credits", subjects("A", "1.5", "F", "0.5"), 6.75, 2, ""},
		{"zero credits", subjects("A", "0", "B", "0"), 0, 0, ""},
		{"no subjects", nil, 0, 0, ""},
		{"negative credits", subjects("A", "-1"), 0, 0, "Invalid Credits"},
		{"empty credits", subjects("A", ""), 0, 0, "Invalid Credits"},
		{"text credits", subjects("A", "four"), 0, 0, "Invalid Credits"},
		{"nan credits", subjects("A", "NaN"), 0, 0, "Invalid Credits"},
		{"infinite credits", subjects("A", "Inf"), 0, 0, "Invalid Credits"},
		{"unknown grade", subjects("Z", "4"), 0, 0, "Unknown Grade: 'Z'"},
		{"unknown grade keeps raw text", subjects(" z ", "4"), 0, 0, "Unknown Grade: ' z '"},
		{"empty grade", subjects("", "4"), 0, 0, "Unknown Grade: ''"},
		{"later invalid row discards sums", subjects("A", "4", "B", "x"), 0, 0, "Invalid Credits"},
		{"first error wins", subjects("Z", "4", "A", "-2"), 0, 0, "Unknown Grade: 'Z'"},
		{"credits checked before grade", subjects("Z", "-2"), 0, 0, "Invalid Credits"},
		{"total credits overflow", subjects("A", "1e308", "A", "1e308"), 0, 0, "Invalid Credits"},
		{"credit points overflow", subjects("A+", "1e308"), 0, 0, "Invalid Credits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSemesterResult(tt.subjects, table)
			assert.InDelta(t, tt.sgpa, got.SGPA, 1e-9)
			assert.Equal(t, tt.credits, got.TotalCredits)
			assert.Equal(t, tt.err, got.Error)
			assert.Equal(t, tt.err == "", got.Valid())
		})
	}
}

func TestComputeSemesterResultIsRepeatable(t *testing.T) {
	table := models.DefaultGradeTable()
	in := subjects("A", "4", "B+", "3", "C", "2")

	first := ComputeSemesterResult(in, table)
	second := ComputeSemesterResult(in, table)

	assert.Equal(t, first, second)
	assert.Equal(t, models.DefaultGradeTable(), table)
}

func TestComputeSemesterResultUsesGivenTable(t *testing.T) {
	table := models.GradeTable{{Grade: "PASS", Points: 4}}

	got := ComputeSemesterResult(subjects("pass", "3"), table)
	assert.Equal(t, models.SemesterResult{SGPA: 4, TotalCredits: 3}, got)

	got = ComputeSemesterResult(subjects("A", "3"), table)
	assert.Equal(t, "Unknown Grade: 'A'", got.Error)
}

func TestValidateSemester(t *testing.T) {
	table := models.DefaultGradeTable()

	assert.NoError(t, ValidateSemester(subjects("A", "4"), table))
	assert.ErrorIs(t, ValidateSemester(subjects("A", "-4"), table), ErrInvalidCredits)

	var unknown *UnknownGradeError
	err := ValidateSemester(subjects("Q", "4"), table)
	if assert.ErrorAs(t, err, &unknown) {
		assert.Equal(t, "Q", unknown.Grade)
	}
}

func TestParseCredits(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"4", 4, true},
		{" 3.5\t", 3.5, true},
		{"0", 0, true},
		{"-0", 0, true},
		{"1e1", 10, true},
		{"-1", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"+Inf", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseCredits(tt.input)
		if tt.ok {
			assert.NoError(t, err, tt.input)
			assert.Equal(t, tt.expected, got, tt.input)
		} else {
			assert.ErrorIs(t, err, ErrInvalidCredits, tt.input)
		}
	}
}
