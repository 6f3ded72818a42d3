// Package calculator aggregates subject grades into SGPA and CGPA values.
// Every function here is pure: it reads its arguments and nothing else.
package calculator

import (
	"cgpa-calculator/models"
	"math"
	"strconv"
	"strings"
)

// ParseCredits trims s and parses it as a non-negative finite number.
func ParseCredits(s string) (float64, error) {
	credits, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || credits < 0 || !finite(credits) {
		return 0, ErrInvalidCredits
	}
	return credits, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sum stops at the first invalid row. A row that pushes either total past
// the float64 range counts as invalid credits.
func sum(subjects []models.SubjectEntry, table models.GradeTable) (creditPoints, totalCredits float64, err error) {
	for _, s := range subjects {
		credits, err := ParseCredits(s.Credits)
		if err != nil {
			return 0, 0, err
		}
		points, ok := table.Lookup(s.Grade)
		if !ok {
			return 0, 0, &UnknownGradeError{Grade: s.Grade}
		}
		creditPoints += points * credits
		totalCredits += credits
		if !finite(creditPoints) || !finite(totalCredits) {
			return 0, 0, ErrInvalidCredits
		}
	}
	return creditPoints, totalCredits, nil
}

// ValidateSemester reports the error ComputeSemesterResult would attach, or
// nil.
func ValidateSemester(subjects []models.SubjectEntry, table models.GradeTable) error {
	_, _, err := sum(subjects, table)
	return err
}

// ComputeSemesterResult returns the credit-weighted grade point average of
// subjects. The first invalid row discards the whole semester: the result
// is zero with the row's error message.
func ComputeSemesterResult(subjects []models.SubjectEntry, table models.GradeTable) models.SemesterResult {
	creditPoints, totalCredits, err := sum(subjects, table)
	if err != nil {
		return models.SemesterResult{Error: err.Error()}
	}
	var sgpa float64
	if totalCredits > 0 {
		sgpa = creditPoints / totalCredits
	}
	return models.SemesterResult{SGPA: sgpa, TotalCredits: totalCredits}
}
