package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSemesterNotFound = errors.New("semester not found")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrLastSemester     = errors.New("workspace must keep at least one semester")
	ErrLastSubject      = errors.New("semester must keep at least one subject")
)

// Workspace is the editable state behind one calculator screen.
type Workspace struct {
	ID                string     `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	GradeTable        GradeTable `json:"grade_table,omitempty" yaml:"grade_table,omitempty" toml:"grade_table,omitempty"`
	Semesters         []Semester `json:"semesters" yaml:"semesters" toml:"semesters"`
	IncludePercentage bool       `json:"include_percentage" yaml:"include_percentage" toml:"include_percentage"`
	Version           int64      `json:"version,omitempty" yaml:"-" toml:"-"`
	CreatedAt         time.Time  `json:"created_at,omitempty" yaml:"-" toml:"-"`
	UpdatedAt         time.Time  `json:"updated_at,omitempty" yaml:"-" toml:"-"`
}

// NewWorkspace returns the initial state of the calculator: the given grade
// table and a single "Semester 1" with one empty row.
func NewWorkspace(table GradeTable) Workspace {
	if len(table) == 0 {
		table = DefaultGradeTable()
	}
	return Workspace{
		ID:         uuid.NewString(),
		GradeTable: table.Clone(),
		Semesters:  []Semester{NewSemester(1)},
	}
}

func (w Workspace) Clone() Workspace {
	w.GradeTable = w.GradeTable.Clone()
	semesters := make([]Semester, len(w.Semesters))
	for i, s := range w.Semesters {
		semesters[i] = s.Clone()
	}
	w.Semesters = semesters
	return w
}

func (w Workspace) semesterIndex(id string) int {
	for i, s := range w.Semesters {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (w Workspace) WithGradeTable(t GradeTable) Workspace {
	out := w.Clone()
	out.GradeTable = t.Clone()
	return out
}

func (w Workspace) WithPercentage(enabled bool) Workspace {
	out := w.Clone()
	out.IncludePercentage = enabled
	return out
}

// WithSemesters replaces every semester. An empty list leaves one default
// semester in place.
func (w Workspace) WithSemesters(semesters []Semester) Workspace {
	out := w.Clone()
	out.Semesters = make([]Semester, 0, len(semesters))
	for _, s := range semesters {
		out.Semesters = append(out.Semesters, s.WithIDs())
	}
	if len(out.Semesters) == 0 {
		out.Semesters = []Semester{NewSemester(1)}
	}
	return out
}

// AddSemester appends "Semester n+1" where n is the current semester count.
func (w Workspace) AddSemester() Workspace {
	out := w.Clone()
	out.Semesters = append(out.Semesters, NewSemester(len(w.Semesters)+1))
	return out
}

func (w Workspace) RenameSemester(id, title string) (Workspace, error) {
	i := w.semesterIndex(id)
	if i < 0 {
		return w.Clone(), ErrSemesterNotFound
	}
	out := w.Clone()
	out.Semesters[i].Title = title
	return out, nil
}

func (w Workspace) RemoveSemester(id string) (Workspace, error) {
	i := w.semesterIndex(id)
	if i < 0 {
		return w.Clone(), ErrSemesterNotFound
	}
	if len(w.Semesters) <= 1 {
		return w.Clone(), ErrLastSemester
	}
	out := w.Clone()
	out.Semesters = append(out.Semesters[:i], out.Semesters[i+1:]...)
	return out, nil
}

func (w Workspace) AddSubject(semesterID string) (Workspace, error) {
	i := w.semesterIndex(semesterID)
	if i < 0 {
		return w.Clone(), ErrSemesterNotFound
	}
	out := w.Clone()
	out.Semesters[i].Subjects = append(out.Semesters[i].Subjects, NewSubjectEntry())
	return out, nil
}

func (w Workspace) UpdateSubject(semesterID, subjectID string, patch SubjectPatch) (Workspace, error) {
	i := w.semesterIndex(semesterID)
	if i < 0 {
		return w.Clone(), ErrSemesterNotFound
	}
	out := w.Clone()
	for j, s := range out.Semesters[i].Subjects {
		if s.ID == subjectID {
			out.Semesters[i].Subjects[j] = patch.Apply(s)
			return out, nil
		}
	}
	return w.Clone(), ErrSubjectNotFound
}

func (w Workspace) RemoveSubject(semesterID, subjectID string) (Workspace, error) {
	i := w.semesterIndex(semesterID)
	if i < 0 {
		return w.Clone(), ErrSemesterNotFound
	}
	subjects := w.Semesters[i].Subjects
	for j, s := range subjects {
		if s.ID != subjectID {
			continue
		}
		if len(subjects) <= 1 {
			return w.Clone(), ErrLastSubject
		}
		out := w.Clone()
		out.Semesters[i].Subjects = append(out.Semesters[i].Subjects[:j], out.Semesters[i].Subjects[j+1:]...)
		return out, nil
	}
	return w.Clone(), ErrSubjectNotFound
}
