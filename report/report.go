// Package report turns a workspace into the values a user sees: per
// semester results, the overall CGPA and the optional percentage, each
// with its display string.
package report

import (
	"cgpa-calculator/calculator"
	"cgpa-calculator/models"
	"fmt"
)

func SemesterSummary(r models.SemesterResult) string {
	if !r.Valid() {
		return "Error: " + r.Error
	}
	return fmt.Sprintf("SGPA: %.2f | Credits: %.1f", r.SGPA, r.TotalCredits)
}

func FormatCGPA(cgpa float64) string {
	return fmt.Sprintf("%.2f", cgpa)
}

// FormatPercentage clamps p to [0, 100] before formatting it.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.2f%%", calculator.ClampPercentage(p))
}

// Build runs the aggregation over ws against its own grade table, empty or
// not.
func Build(ws models.Workspace, formula *calculator.PercentageFormula) (models.Report, error) {
	table := ws.GradeTable

	overall := calculator.ComputeOverallResult(ws.Semesters, table)
	percentage, err := formula.Percentage(overall.CGPA, ws.IncludePercentage)
	if err != nil {
		return models.Report{}, err
	}

	rep := models.Report{
		WorkspaceID:       ws.ID,
		Version:           ws.Version,
		GradeTable:        table.Clone(),
		Semesters:         make([]models.SemesterReport, 0, len(ws.Semesters)),
		CGPA:              overall.CGPA,
		CGPADisplay:       FormatCGPA(overall.CGPA),
		IncludePercentage: ws.IncludePercentage,
		Percentage:        percentage,
	}
	if percentage != nil {
		rep.PercentageDisplay = FormatPercentage(*percentage)
	}
	for i, s := range ws.Semesters {
		result := overall.PerSemesterResults[i]
		rep.Semesters = append(rep.Semesters, models.SemesterReport{
			ID:       s.ID,
			Title:    s.Title,
			Subjects: append([]models.SubjectEntry(nil), s.Subjects...),
			Result:   result,
			Summary:  SemesterSummary(result),
		})
	}
	return rep, nil
}
