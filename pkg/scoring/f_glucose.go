package scoring

import (
	"fmt"

	"github.com/riskscope/riskscope/pkg/factors"
)

// GlucoseFactor scores plasma glucose in two bands.
type GlucoseFactor struct {
	HighAbove      float64 // mg/dL
	HighWeight     float64
	ElevatedAbove  float64 // mg/dL
	ElevatedWeight float64
}

func (m *GlucoseFactor) Key() string  { return "glucose" }
func (m *GlucoseFactor) Name() string { return "Glucose level" }

func (m *GlucoseFactor) Evaluate(f factors.RiskFactors) FactorResult {
	result := FactorResult{
		Key:        m.Key(),
		Name:       m.Name(),
		Value:      f.Glucose,
		Band:       fmt.Sprintf("<= %g", m.ElevatedAbove),
		Modifiable: true,
	}

	switch {
	case f.Glucose > m.HighAbove:
		result.Band = fmt.Sprintf("> %g", m.HighAbove)
		result.Contribution = m.HighWeight
	case f.Glucose > m.ElevatedAbove:
		result.Band = fmt.Sprintf("> %g", m.ElevatedAbove)
		result.Contribution = m.ElevatedWeight
	}

	return result
}
