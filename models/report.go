package models

type SemesterReport struct {
	ID       string         `json:"id" yaml:"id"`
	Title    string         `json:"title" yaml:"title"`
	Subjects []SubjectEntry `json:"subjects" yaml:"subjects"`
	Result   SemesterResult `json:"result" yaml:"result"`
	Summary  string         `json:"summary" yaml:"summary"`
}

// Report is what the presentation layer renders after every change. Version
// is the workspace version it was built from.
type Report struct {
	WorkspaceID       string           `json:"workspace_id,omitempty" yaml:"workspace_id,omitempty"`
	Version           int64            `json:"version,omitempty" yaml:"version,omitempty"`
	GradeTable        GradeTable       `json:"grade_table" yaml:"grade_table"`
	Semesters         []SemesterReport `json:"semesters" yaml:"semesters"`
	CGPA              float64          `json:"cgpa" yaml:"cgpa"`
	CGPADisplay       string           `json:"cgpa_display" yaml:"cgpa_display"`
	IncludePercentage bool             `json:"include_percentage" yaml:"include_percentage"`
	Percentage        *float64         `json:"percentage,omitempty" yaml:"percentage,omitempty"`
	PercentageDisplay string           `json:"percentage_display,omitempty" yaml:"percentage_display,omitempty"`
}
