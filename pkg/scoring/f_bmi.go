package scoring

import (
	"fmt"

	"github.com/riskscope/riskscope/pkg/factors"
)

// BMIFactor scores body mass index: obese and overweight bands.
type BMIFactor struct {
	ObeseAbove       float64
	ObeseWeight      float64
	OverweightAbove  float64
	OverweightWeight float64
}

func (m *BMIFactor) Key() string  { return "bmi" }
func (m *BMIFactor) Name() string { return "BMI" }

func (m *BMIFactor) Evaluate(f factors.RiskFactors) FactorResult {
	result := FactorResult{
		Key:        m.Key(),
		Name:       m.Name(),
		Value:      f.BMI,
		Band:       fmt.Sprintf("<= %g", m.OverweightAbove),
		Modifiable: true,
	}

	if f.BMI > m.ObeseAbove {
		result.Band = fmt.Sprintf("> %g", m.ObeseAbove)
		result.Contribution = m.ObeseWeight
	} else if f.BMI > m.OverweightAbove {
		result.Band = fmt.Sprintf("> %g", m.OverweightAbove)
		result.Contribution = m.OverweightWeight
	}

	return result
}
