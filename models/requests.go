package models

import "time"

type CalculateRequest struct {
	GradeTable        []GradeEntry `json:"grade_table" validate:"omitempty,dive"`
	Semesters         []Semester   `json:"semesters" validate:"required,min=1,dive"`
	IncludePercentage bool         `json:"include_percentage"`
}

type PercentageRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type GradeUpdateRequest struct {
	Label  *string `json:"label"`
	Points *string `json:"points"`
}

type SemesterUpdateRequest struct {
	Title *string `json:"title" validate:"required"`
}

type SubjectUpdateRequest struct {
	SubjectPatch
}

type JWT struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Session struct {
	JWT
	Report Report `json:"report"`
}
