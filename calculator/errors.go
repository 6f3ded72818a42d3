package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidCredits is reported when a credits value is missing, not a
// number, or negative.
var ErrInvalidCredits = errors.New("Invalid Credits")

// UnknownGradeError is reported when a grade has no entry in the grade
// table. Grade holds the text as the user typed it.
type UnknownGradeError struct {
	Grade string
}

func (e *UnknownGradeError) Error() string {
	return fmt.Sprintf("Unknown Grade: '%s'", e.Grade)
}

// SemesterError ties an aggregation error to the semester it came from.
type SemesterError struct {
	Index int
	Title string
	Err   error
}

func (e *SemesterError) Error() string {
	return fmt.Sprintf("semester %d (%q): %v", e.Index+1, e.Title, e.Err)
}

func (e *SemesterError) Unwrap() error {
	return e.Err
}
