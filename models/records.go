package models

import "time"

// WorkspaceRecord and its children are the rows the session store keeps in
// memory. Position columns preserve the editor's ordering.
type WorkspaceRecord struct {
	ID                string `gorm:"primaryKey;size:36"`
	IncludePercentage bool
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time        `gorm:"index"`
	Grades            []GradeRecord    `gorm:"foreignKey:WorkspaceID"`
	Semesters         []SemesterRecord `gorm:"foreignKey:WorkspaceID"`
}

func (WorkspaceRecord) TableName() string { return "workspaces" }

type GradeRecord struct {
	ID          uint   `gorm:"primaryKey"`
	WorkspaceID string `gorm:"index;size:36;not null"`
	Position    int    `gorm:"not null"`
	Grade       string `gorm:"not null"`
	Points      float64
}

func (GradeRecord) TableName() string { return "grades" }

type SemesterRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	WorkspaceID string `gorm:"index;size:36;not null"`
	Position    int    `gorm:"not null"`
	Title       string
	Subjects    []SubjectRecord `gorm:"foreignKey:SemesterID"`
}

func (SemesterRecord) TableName() string { return "semesters" }

type SubjectRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	SemesterID  string `gorm:"index;size:36;not null"`
	WorkspaceID string `gorm:"index;size:36;not null"`
	Position    int    `gorm:"not null"`
	Name        string
	Grade       string
	Credits     string
}

func (SubjectRecord) TableName() string { return "subjects" }

// ToRecord flattens w into rows.
func (w Workspace) ToRecord() (WorkspaceRecord, []GradeRecord, []SemesterRecord, []SubjectRecord) {
	ws := WorkspaceRecord{
		ID:                w.ID,
		IncludePercentage: w.IncludePercentage,
		Version:           w.Version,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
	grades := make([]GradeRecord, 0, len(w.GradeTable))
	for i, e := range w.GradeTable {
		grades = append(grades, GradeRecord{WorkspaceID: w.ID, Position: i, Grade: e.Grade, Points: e.Points})
	}
	var semesters []SemesterRecord
	var subjects []SubjectRecord
	for i, s := range w.Semesters {
		semesters = append(semesters, SemesterRecord{ID: s.ID, WorkspaceID: w.ID, Position: i, Title: s.Title})
		for j, sub := range s.Subjects {
			subjects = append(subjects, SubjectRecord{
				ID:          sub.ID,
				SemesterID:  s.ID,
				WorkspaceID: w.ID,
				Position:    j,
				Name:        sub.Name,
				Grade:       sub.Grade,
				Credits:     sub.Credits,
			})
		}
	}
	return ws, grades, semesters, subjects
}

// ToWorkspace expects children already ordered by position.
func (r WorkspaceRecord) ToWorkspace() Workspace {
	w := Workspace{
		ID:                r.ID,
		IncludePercentage: r.IncludePercentage,
		Version:           r.Version,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		GradeTable:        make(GradeTable, 0, len(r.Grades)),
		Semesters:         make([]Semester, 0, len(r.Semesters)),
	}
	for _, g := range r.Grades {
		w.GradeTable = append(w.GradeTable, GradeEntry{Grade: g.Grade, Points: g.Points})
	}
	for _, s := range r.Semesters {
		sem := Semester{ID: s.ID, Title: s.Title, Subjects: make([]SubjectEntry, 0, len(s.Subjects))}
		for _, sub := range s.Subjects {
			sem.Subjects = append(sem.Subjects, SubjectEntry{
				ID:      sub.ID,
				Name:    sub.Name,
				Grade:   sub.Grade,
				Credits: sub.Credits,
			})
		}
		w.Semesters = append(w.Semesters, sem)
	}
	return w
}
