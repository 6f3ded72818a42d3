package config

import (
	"cgpa-calculator/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGradeScale(t *testing.T) {
	expected := models.GradeTable{
		{Grade: "O", Points: 10},
		{Grade: "A+", Points: 9},
		{Grade: "P", Points: 4.5},
	}

	tests := []struct {
		ext  string
		data string
	}{
		{".yaml", "grades:\n  - grade: o\n    points: 10\n  - grade: A+\n    points: 9\n  - grade: P\n    points: 4.5\n"},
		{".toml", "[[grades]]\ngrade = \"o\"\npoints = 10.0\n\n[[grades]]\ngrade = \"A+\"\npoints = 9.0\n\n[[grades]]\ngrade = \"P\"\npoints = 4.5\n"},
		{".json", `{"grades":[{"grade":"o","points":10},{"grade":"A+","points":9},{"grade":"P","points":4.5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			table, err := ParseGradeScale([]byte(tt.data), tt.ext)
			require.NoError(t, err)
			assert.Equal(t, expected, table)
		})
	}
}

func TestParseGradeScaleErrors(t *testing.T) {
	_, err := ParseGradeScale([]byte("grades: []\n"), ".yaml")
	assert.Error(t, err)

	_, err = ParseGradeScale([]byte("x"), ".ini")
	assert.Error(t, err)

	_, err = ParseGradeScale([]byte("{"), ".json")
	assert.Error(t, err)
}

func TestLoadGradeScale(t *testing.T) {
	table, err := LoadGradeScale("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultGradeTable(), table)

	_, err = LoadGradeScale(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	for _, ext := range []string{".yaml", ".toml", ".json"} {
		data, err := EncodeGradeScale(models.DefaultGradeTable(), ext)
		require.NoError(t, err, ext)

		path := filepath.Join(t.TempDir(), "scale"+ext)
		require.NoError(t, os.WriteFile(path, data, 0644))

		loaded, err := LoadGradeScale(path)
		require.NoError(t, err, ext)
		assert.Equal(t, models.DefaultGradeTable(), loaded, ext)
	}
}
