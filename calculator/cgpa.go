package calculator

import (
	"cgpa-calculator/models"

	"github.com/hashicorp/go-multierror"
)

// ComputeOverallResult computes every semester on its own and weights the
// error-free ones by their credits. Semesters with errors stay in
// PerSemesterResults at their position but carry no weight. Totals beyond
// the float64 range give a CGPA of 0.
func ComputeOverallResult(semesters []models.Semester, table models.GradeTable) models.OverallResult {
	results := make([]models.SemesterResult, 0, len(semesters))
	var weighted, credits float64
	for _, s := range semesters {
		r := ComputeSemesterResult(s.Subjects, table)
		results = append(results, r)
		if !r.Valid() {
			continue
		}
		weighted += r.SGPA * r.TotalCredits
		credits += r.TotalCredits
	}
	var cgpa float64
	if credits > 0 && finite(weighted) && finite(credits) {
		cgpa = weighted / credits
	}
	return models.OverallResult{CGPA: cgpa, PerSemesterResults: results}
}

// Diagnose returns every semester error, or nil when all semesters compute.
func Diagnose(semesters []models.Semester, table models.GradeTable) error {
	var result *multierror.Error
	for i, s := range semesters {
		if err := ValidateSemester(s.Subjects, table); err != nil {
			result = multierror.Append(result, &SemesterError{Index: i, Title: s.Title, Err: err})
		}
	}
	return result.ErrorOrNil()
}
