package config

import (
	"bytes"
	"cgpa-calculator/models"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// GradeScale is the file form of a grade table:
//
//	grades:
//	  - grade: A+
//	    points: 10
type GradeScale struct {
	Grades []models.GradeEntry `json:"grades" yaml:"grades" toml:"grades"`
}

// LoadGradeScale reads a grade table from a .yaml, .yml, .toml or .json
// file. An empty path returns the default table.
func LoadGradeScale(path string) (models.GradeTable, error) {
	if path == "" {
		return models.DefaultGradeTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read grade scale")
	}
	return ParseGradeScale(data, filepath.Ext(path))
}

// ParseGradeScale decodes data in the format named by ext.
func ParseGradeScale(data []byte, ext string) (models.GradeTable, error) {
	var scale GradeScale
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &scale)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&scale)
	case ".json":
		err = json.Unmarshal(data, &scale)
	default:
		return nil, errors.Errorf("unsupported grade scale format %q", ext)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode grade scale")
	}
	table := models.NewGradeTable(scale.Grades)
	if table.Len() == 0 {
		return nil, errors.New("grade scale has no grades")
	}
	return table, nil
}

// EncodeGradeScale renders t in the format named by ext.
func EncodeGradeScale(t models.GradeTable, ext string) ([]byte, error) {
	scale := GradeScale{Grades: t}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(scale)
	case ".toml":
		return toml.Marshal(scale)
	case ".json":
		return json.MarshalIndent(scale, "", "  ")
	}
	return nil, errors.Errorf("unsupported grade scale format %q", ext)
}
