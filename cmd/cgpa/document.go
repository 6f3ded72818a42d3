package main

import (
	"bytes"
	"cgpa-calculator/models"
	"cgpa-calculator/sheets"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// readDocument loads a workspace from a .yaml, .yml, .json or .toml
// document, or the semesters of an .xlsx workbook. Credits are strings in
// every format so that they reach the calculator as typed.
func readDocument(path string) (models.Workspace, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		f, err := os.Open(path)
		if err != nil {
			return models.Workspace{}, errors.Wrap(err, "open workbook")
		}
		defer f.Close()
		semesters, err := sheets.ReadSemesters(f)
		if err != nil {
			return models.Workspace{}, errors.Wrapf(err, "read %s", path)
		}
		return models.Workspace{Semesters: semesters}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Workspace{}, errors.Wrap(err, "read document")
	}
	var ws models.Workspace
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ws)
	case ".json":
		err = json.Unmarshal(data, &ws)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&ws)
	default:
		return models.Workspace{}, errors.Errorf("unsupported document format %q", ext)
	}
	if err != nil {
		return models.Workspace{}, errors.Wrapf(err, "decode %s", path)
	}
	ws.GradeTable = models.NewGradeTable(ws.GradeTable)
	return ws, nil
}
