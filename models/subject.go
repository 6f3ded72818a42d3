package models

import "github.com/google/uuid"

type SubjectEntry struct {
	ID      string `json:"id" yaml:"id,omitempty" toml:"id,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Grade   string `json:"grade" yaml:"grade" toml:"grade"`
	Credits string `json:"credits" yaml:"credits" toml:"credits"`
}

func NewSubjectEntry() SubjectEntry {
	return SubjectEntry{ID: uuid.NewString()}
}

// SubjectPatch carries the fields of a subject row that changed. Nil fields
// are left as they are.
type SubjectPatch struct {
	Name    *string `json:"name,omitempty"`
	Grade   *string `json:"grade,omitempty"`
	Credits *string `json:"credits,omitempty"`
}

func (p SubjectPatch) Apply(s SubjectEntry) SubjectEntry {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Grade != nil {
		s.Grade = *p.Grade
	}
	if p.Credits != nil {
		s.Credits = *p.Credits
	}
	return s
}
