package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/riskscope/riskscope/pkg/factors"
	"github.com/riskscope/riskscope/pkg/noise"
)

// Factor is the interface that all threshold factors implement.
type Factor interface {
	// Key returns the machine-readable factor identifier.
	Key() string
	// Name returns the human-readable factor name.
	Name() string
	// Evaluate computes the factor's additive contribution for one record.
	Evaluate(f factors.RiskFactors) FactorResult
}

// Engine runs all configured factors and algorithm profiles against a
// RiskFactors record and produces an Assessment.
type Engine struct {
	factors    []Factor
	algorithms []Algorithm
}

// NewEngine creates a scoring engine with the given factors and the
// standard algorithm profiles.
func NewEngine(fs ...Factor) *Engine {
	return &Engine{factors: fs, algorithms: Algorithms()}
}

// Compute scores f. Every algorithm draws one offset from src, in
// algorithm order, so the same seed always yields the same assessment.
func (e *Engine) Compute(f factors.RiskFactors, src noise.Source) (*Assessment, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("noise source is nil")
	}

	result := &Assessment{Factors: f}

	var sum float64
	for _, m := range e.factors {
		fr := m.Evaluate(f)
		result.Breakdown = append(result.Breakdown, fr)
		sum += fr.Contribution
	}
	result.BaseRisk = clampBaseRisk(sum * 100)

	var total, confidence float64
	for _, alg := range e.algorithms {
		p := Prediction{
			Name:        alg.Name,
			Probability: clampProbability(result.BaseRisk + src.Offset(alg.Amplitude)),
			Confidence:  alg.Confidence,
		}
		result.Predictions = append(result.Predictions, p)
		total += p.Probability
		confidence += alg.Confidence
	}

	if n := len(result.Predictions); n > 0 {
		result.MainRisk = int(math.Round(total / float64(n)))
		result.Confidence = confidence / float64(n)
	}

	result.RiskLevel = LevelFromRisk(result.MainRisk)
	result.Drivers = computeDrivers(result.Breakdown)
	result.SuggestedActions = generateSuggestions(result.Breakdown)

	return result, nil
}

// clampBaseRisk keeps engines built from custom factors inside [0, 100].
func clampBaseRisk(r float64) float64 {
	return math.Min(math.Max(r, 0), 100)
}

// computeDrivers lists the factors with a positive contribution, largest
// first. Ties keep factor order.
func computeDrivers(breakdown []FactorResult) []Driver {
	var drivers []Driver
	for _, fr := range breakdown {
		if fr.Contribution <= 0 {
			continue
		}
		points := fr.Contribution * 100
		drivers = append(drivers, Driver{
			Key:          fr.Key,
			Name:         fr.Name,
			Summary:      fmt.Sprintf("%g (%s)", fr.Value, fr.Band),
			Contribution: points,
		})
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].Contribution > drivers[j].Contribution
	})

	return drivers
}

// generateSuggestions produces recommendations for contributing factors.
// Age produces none; it cannot be acted on.
func generateSuggestions(breakdown []FactorResult) []SuggestedAction {
	var actions []SuggestedAction

	for _, fr := range breakdown {
		if fr.Contribution <= 0 {
			continue
		}
		switch fr.Key {
		case "glucose":
			actions = append(actions, SuggestedAction{
				Title:       "Schedule regular glucose monitoring",
				Description: fmt.Sprintf("Plasma glucose of %.0f mg/dL is in the %s band. Early and repeated glucose checks are the primary screening signal.", fr.Value, fr.Band),
				Addresses:   []string{fr.Key},
			})
		case "bmi":
			actions = append(actions, SuggestedAction{
				Title:       "Focus on weight management",
				Description: fmt.Sprintf("A BMI of %.1f is in the %s band. Diet and exercise that lower BMI reduce risk significantly.", fr.Value, fr.Band),
				Addresses:   []string{fr.Key},
			})
		case "blood_pressure":
			actions = append(actions, SuggestedAction{
				Title:       "Monitor blood pressure",
				Description: fmt.Sprintf("Diastolic pressure of %.0f mmHg is in the %s band. Regular BP checks are advised for high-risk individuals.", fr.Value, fr.Band),
				Addresses:   []string{fr.Key},
			})
		case "diabetes_pedigree":
			actions = append(actions, SuggestedAction{
				Title:       "Consider family screening",
				Description: fmt.Sprintf("A pedigree score of %.2f points to a strong family history. Relatives may benefit from screening.", fr.Value),
				Addresses:   []string{fr.Key},
			})
		}
	}

	if len(actions) > 3 {
		actions = actions[:3]
	}

	return actions
}
