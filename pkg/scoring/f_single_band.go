package scoring

import (
	"fmt"

	"github.com/riskscope/riskscope/pkg/factors"
)

// BloodPressureFactor adds a fixed weight once diastolic pressure crosses
// a single threshold.
type BloodPressureFactor struct {
	HighAbove float64 // mmHg
	Weight    float64
}

func (m *BloodPressureFactor) Key() string  { return "blood_pressure" }
func (m *BloodPressureFactor) Name() string { return "Blood pressure" }

func (m *BloodPressureFactor) Evaluate(f factors.RiskFactors) FactorResult {
	return singleBand(m.Key(), m.Name(), f.BloodPressure, m.HighAbove, m.Weight, true)
}

// PedigreeFactor adds a fixed weight for a strong family history.
type PedigreeFactor struct {
	HighAbove float64
	Weight    float64
}

func (m *PedigreeFactor) Key() string  { return "diabetes_pedigree" }
func (m *PedigreeFactor) Name() string { return "Diabetes pedigree" }

func (m *PedigreeFactor) Evaluate(f factors.RiskFactors) FactorResult {
	return singleBand(m.Key(), m.Name(), f.DiabetesPedigree, m.HighAbove, m.Weight, false)
}

func singleBand(key, name string, value, above, weight float64, modifiable bool) FactorResult {
	result := FactorResult{
		Key:        key,
		Name:       name,
		Value:      value,
		Band:       fmt.Sprintf("<= %g", above),
		Modifiable: modifiable,
	}
	if value > above {
		result.Band = fmt.Sprintf("> %g", above)
		result.Contribution = weight
	}
	return result
}
