package models

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrGradeNotFound = errors.New("grade not found")
	ErrLastGrade     = errors.New("grade table must keep at least one entry")
)

// NewGradeLabel is the label given to a mapping added from the editor.
const NewGradeLabel = "NEW"

type GradeEntry struct {
	Grade  string  `json:"grade" yaml:"grade" toml:"grade" validate:"required"`
	Points float64 `json:"points" yaml:"points" toml:"points"`
}

// GradeTable is an ordered grade label -> points mapping. Every edit returns
// a new table; a GradeTable value is never modified in place.
type GradeTable []GradeEntry

func DefaultGradeTable() GradeTable {
	return GradeTable{
		{Grade: "A+", Points: 10},
		{Grade: "A", Points: 9},
		{Grade: "B+", Points: 8},
		{Grade: "B", Points: 7},
		{Grade: "C", Points: 6},
		{Grade: "D", Points: 5},
		{Grade: "E", Points: 4},
		{Grade: "F", Points: 0},
	}
}

// NormalizeGrade trims the label and upper-cases it with full Unicode
// case mapping.
func NormalizeGrade(grade string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(grade))
}

// NewGradeTable builds a table from arbitrary entries, normalizing labels.
// Duplicate labels keep the first position and the last value; blank labels
// are dropped.
func NewGradeTable(entries []GradeEntry) GradeTable {
	table := make(GradeTable, 0, len(entries))
	for _, e := range entries {
		key := NormalizeGrade(e.Grade)
		if key == "" {
			continue
		}
		table = table.put(key, e.Points)
	}
	return table
}

func (t GradeTable) Len() int {
	return len(t)
}

func (t GradeTable) index(grade string) int {
	for i, e := range t {
		if e.Grade == grade {
			return i
		}
	}
	return -1
}

// Lookup normalizes grade and returns its points.
func (t GradeTable) Lookup(grade string) (float64, bool) {
	i := t.index(NormalizeGrade(grade))
	if i < 0 {
		return 0, false
	}
	return t[i].Points, true
}

func (t GradeTable) Clone() GradeTable {
	if t == nil {
		return nil
	}
	out := make(GradeTable, len(t))
	copy(out, t)
	return out
}

// put is an insertion-ordered map put on a copy of t.
func (t GradeTable) put(grade string, points float64) GradeTable {
	out := t.Clone()
	if i := out.index(grade); i >= 0 {
		out[i].Points = points
		return out
	}
	return append(out, GradeEntry{Grade: grade, Points: points})
}

// Add appends the NEW mapping with zero points.
func (t GradeTable) Add() GradeTable {
	return t.put(NewGradeLabel, 0)
}

// Rename replaces the label of grade with the normalized label, keeping its
// position and points. A blank label leaves the table unchanged.
func (t GradeTable) Rename(grade, label string) (GradeTable, error) {
	i := t.index(NormalizeGrade(grade))
	if i < 0 {
		return t.Clone(), ErrGradeNotFound
	}
	key := NormalizeGrade(label)
	if key == "" {
		return t.Clone(), nil
	}
	out := make(GradeTable, 0, len(t))
	for j, e := range t {
		if j == i {
			out = out.put(key, e.Points)
		} else {
			out = out.put(e.Grade, e.Points)
		}
	}
	return out, nil
}

// SetPoints parses text and stores it as the points of grade. Text that is
// not a finite number leaves the table unchanged.
func (t GradeTable) SetPoints(grade, text string) (GradeTable, error) {
	grade = NormalizeGrade(grade)
	if t.index(grade) < 0 {
		return t.Clone(), ErrGradeNotFound
	}
	points, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(points) || math.IsInf(points, 0) {
		return t.Clone(), nil
	}
	return t.put(grade, points), nil
}

// Delete removes grade. The last remaining entry cannot be deleted.
func (t GradeTable) Delete(grade string) (GradeTable, error) {
	i := t.index(NormalizeGrade(grade))
	if i < 0 {
		return t.Clone(), ErrGradeNotFound
	}
	if len(t) <= 1 {
		return t.Clone(), ErrLastGrade
	}
	out := make(GradeTable, 0, len(t)-1)
	out = append(out, t[:i]...)
	return append(out, t[i+1:]...), nil
}
