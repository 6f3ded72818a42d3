package calculator

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"
)

// DefaultPercentageFormula is the CGPA to percentage conversion used when no
// other formula is configured.
const DefaultPercentageFormula = "(cgpa - 0.75) * 10"

// EquivalentPercentage converts cgpa with the default formula. It returns
// nil when the conversion is not enabled. The value is not clamped.
func EquivalentPercentage(cgpa float64, enabled bool) *float64 {
	if !enabled {
		return nil
	}
	p := (cgpa - 0.75) * 10
	return &p
}

// ClampPercentage limits p to [0, 100] for display.
func ClampPercentage(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}

// PercentageFormula is a configured conversion expression over the variable
// cgpa. A nil *PercentageFormula uses the default formula.
type PercentageFormula struct {
	source string
	expr   *govaluate.EvaluableExpression
}

// NewPercentageFormula parses source. An empty source returns nil, which
// selects the default formula.
func NewPercentageFormula(source string) (*PercentageFormula, error) {
	if source == "" {
		return nil, nil
	}
	expr, err := govaluate.NewEvaluableExpression(source)
	if err != nil {
		return nil, errors.Wrapf(err, "parse percentage formula %q", source)
	}
	for _, v := range expr.Vars() {
		if v != "cgpa" {
			return nil, fmt.Errorf("percentage formula %q: unknown variable %q", source, v)
		}
	}
	return &PercentageFormula{source: source, expr: expr}, nil
}

func (f *PercentageFormula) String() string {
	if f == nil {
		return DefaultPercentageFormula
	}
	return f.source
}

// Percentage evaluates the formula for cgpa, or returns nil when not
// enabled.
func (f *PercentageFormula) Percentage(cgpa float64, enabled bool) (*float64, error) {
	if f == nil || !enabled {
		return EquivalentPercentage(cgpa, enabled), nil
	}
	out, err := f.expr.Evaluate(map[string]interface{}{"cgpa": cgpa})
	if err != nil {
		return nil, errors.Wrapf(err, "evaluate percentage formula %q", f.source)
	}
	p, ok := out.(float64)
	if !ok {
		return nil, fmt.Errorf("percentage formula %q returned %T, want a number", f.source, out)
	}
	if !finite(p) {
		return nil, fmt.Errorf("percentage formula %q is not finite for cgpa %g", f.source, cgpa)
	}
	return &p, nil
}
