package models

import (
	"fmt"

	"github.com/google/uuid"
)

type Semester struct {
	ID       string         `json:"id" yaml:"id,omitempty" toml:"id,omitempty"`
	Title    string         `json:"title" yaml:"title" toml:"title"`
	Subjects []SubjectEntry `json:"subjects" yaml:"subjects" toml:"subjects" validate:"required,min=1"`
}

// NewSemester returns a semester titled "Semester n" holding one empty row.
func NewSemester(n int) Semester {
	return Semester{
		ID:       uuid.NewString(),
		Title:    fmt.Sprintf("Semester %d", n),
		Subjects: []SubjectEntry{NewSubjectEntry()},
	}
}

func (s Semester) Clone() Semester {
	s.Subjects = append([]SubjectEntry(nil), s.Subjects...)
	return s
}

// WithIDs fills in missing semester and subject ids and guarantees at least
// one subject row.
func (s Semester) WithIDs() Semester {
	s = s.Clone()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if len(s.Subjects) == 0 {
		s.Subjects = []SubjectEntry{NewSubjectEntry()}
	}
	for i := range s.Subjects {
		if s.Subjects[i].ID == "" {
			s.Subjects[i].ID = uuid.NewString()
		}
	}
	return s
}
