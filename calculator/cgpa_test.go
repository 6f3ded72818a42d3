package calculator

import (
	"cgpa-calculator/models"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func semester(title string, subjects []models.SubjectEntry) models.Semester {
	return models.Semester{Title: title, Subjects: subjects}
}

func TestComputeOverallResult(t *testing.T) {
	table := models.DefaultGradeTable()

	t.Run("credit weighted mean of semesters", func(t *testing.T) {
		got := ComputeOverallResult([]models.Semester{
			semester("S1", subjects("A", "4", "B+", "3")),
			semester("S2", subjects("B", "5")),
		}, table)

		require.Len(t, got.PerSemesterResults, 2)
		assert.InDelta(t, (68.0+35.0)/12.0, got.CGPA, 1e-9)
		assert.InDelta(t, 68.0/7.0, got.PerSemesterResults[0].SGPA, 1e-9)
		assert.Equal(t, 5.0, got.PerSemesterResults[1].TotalCredits)
	})

	t.Run("errored semester is excluded but kept in place", func(t *testing.T) {
		got := ComputeOverallResult([]models.Semester{
			semester("bad", subjects("Z", "4")),
			semester("good", subjects("A", "10")),
		}, table)

		require.Len(t, got.PerSemesterResults, 2)
		assert.Equal(t, 9.0, got.CGPA)
		assert.Equal(t, "Unknown Grade: 'Z'", got.PerSemesterResults[0].Error)
		assert.True(t, got.PerSemesterResults[1].Valid())
	})

	t.Run("errors do not cross semesters", func(t *testing.T) {
		got := ComputeOverallResult([]models.Semester{
			semester("S1", subjects("A", "4")),
			semester("S2", subjects("A", "-1")),
			semester("S3", subjects("C", "4")),
		}, table)

		assert.Equal(t, 7.5, got.CGPA)
		assert.Equal(t, "Invalid Credits", got.PerSemesterResults[1].Error)
	})

	t.Run("zero credits overall", func(t *testing.T) {
		got := ComputeOverallResult([]models.Semester{
			semester("S1", subjects("A", "0")),
			semester("S2", subjects("Z", "3")),
		}, table)

		assert.Equal(t, 0.0, got.CGPA)
		assert.Len(t, got.PerSemesterResults, 2)
	})

	t.Run("no semesters", func(t *testing.T) {
		got := ComputeOverallResult(nil, table)
		assert.Equal(t, 0.0, got.CGPA)
		assert.Empty(t, got.PerSemesterResults)
	})

	t.Run("repeatable", func(t *testing.T) {
		in := []models.Semester{
			semester("S1", subjects("A", "4")),
			semester("S2", subjects("B", "2")),
		}
		assert.Equal(t, ComputeOverallResult(in, table), ComputeOverallResult(in, table))
	})
}

func TestComputeOverallResultOverflow(t *testing.T) {
	table := models.NewGradeTable([]models.GradeEntry{{Grade: "X", Points: 1e308}})
	in := []models.Semester{
		semester("S1", subjects("X", "1")),
		semester("S2", subjects("X", "1")),
	}

	got := ComputeOverallResult(in, table)
	require.Len(t, got.PerSemesterResults, 2)
	assert.True(t, got.PerSemesterResults[0].Valid())
	assert.Equal(t, 1e308, got.PerSemesterResults[0].SGPA)
	assert.Equal(t, 0.0, got.CGPA)
}

func TestDiagnose(t *testing.T) {
	table := models.DefaultGradeTable()

	assert.NoError(t, Diagnose([]models.Semester{semester("S1", subjects("A", "4"))}, table))

	err := Diagnose([]models.Semester{
		semester("S1", subjects("A", "x")),
		semester("S2", subjects("A", "4")),
		semester("S3", subjects("W", "4")),
	}, table)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)

	var first *SemesterError
	require.ErrorAs(t, merr.Errors[0], &first)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "S1", first.Title)
	assert.ErrorIs(t, first, ErrInvalidCredits)

	var second *SemesterError
	require.ErrorAs(t, merr.Errors[1], &second)
	assert.Equal(t, 2, second.Index)
	assert.Contains(t, second.Error(), "Unknown Grade: 'W'")
}
