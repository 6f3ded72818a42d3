package models

// SemesterResult is derived from a semester and a grade table. Error is
// empty when the semester computed.
type SemesterResult struct {
	SGPA         float64 `json:"sgpa" yaml:"sgpa"`
	TotalCredits float64 `json:"total_credits" yaml:"total_credits"`
	Error        string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r SemesterResult) Valid() bool {
	return r.Error == ""
}

type OverallResult struct {
	CGPA               float64          `json:"cgpa" yaml:"cgpa"`
	PerSemesterResults []SemesterResult `json:"per_semester_results" yaml:"per_semester_results"`
}
