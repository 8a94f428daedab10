package scoring

import (
	"fmt"

	"github.com/riskscope/riskscope/pkg/factors"
)

// AgeFactor scores age. Not modifiable, so it never produces a suggestion.
type AgeFactor struct {
	SeniorAbove  float64 // years
	SeniorWeight float64
	MiddleAbove  float64 // years
	MiddleWeight float64
}

func (m *AgeFactor) Key() string  { return "age" }
func (m *AgeFactor) Name() string { return "Age" }

func (m *AgeFactor) Evaluate(f factors.RiskFactors) FactorResult {
	result := FactorResult{
		Key:   m.Key(),
		Name:  m.Name(),
		Value: f.Age,
		Band:  fmt.Sprintf("<= %g", m.MiddleAbove),
	}

	switch {
	case f.Age > m.SeniorAbove:
		result.Band = fmt.Sprintf("> %g", m.SeniorAbove)
		result.Contribution = m.SeniorWeight
	case f.Age > m.MiddleAbove:
		result.Band = fmt.Sprintf("> %g", m.MiddleAbove)
		result.Contribution = m.MiddleWeight
	}

	return result
}
