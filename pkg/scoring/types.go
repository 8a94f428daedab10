// Package scoring implements the Riskscope risk assessment engine.
// It turns a set of clinical risk factors into a composite diabetes risk,
// a risk level and one prediction per algorithm profile.
package scoring

import "github.com/riskscope/riskscope/pkg/factors"

// Assessment is the complete output of scoring one RiskFactors record.
// Immutable once computed.
type Assessment struct {
	MainRisk         int                 `json:"main_risk"` // 0-100, rounded mean of predictions
	RiskLevel        RiskLevel           `json:"risk_level"`
	BaseRisk         float64             `json:"base_risk"`  // 0-100, before noise
	Confidence       float64             `json:"confidence"` // mean of algorithm confidences
	Factors          factors.RiskFactors `json:"factors"`
	Breakdown        []FactorResult      `json:"breakdown"`
	Predictions      []Prediction        `json:"predictions"`
	Drivers          []Driver            `json:"drivers"`
	SuggestedActions []SuggestedAction   `json:"suggested_actions"`
}

// RiskLevel is the three-tier classification of the composite risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// FactorResult is the output of a single threshold factor.
type FactorResult struct {
	Key          string  `json:"key"`          // machine key: "glucose"
	Name         string  `json:"name"`         // human name: "Glucose level"
	Value        float64 `json:"value"`        // observed input value
	Band         string  `json:"band"`         // threshold band the value fell into
	Contribution float64 `json:"contribution"` // additive weight, 0-1
	Modifiable   bool    `json:"modifiable"`
}

// Prediction is one algorithm's risk estimate.
type Prediction struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"` // 0-95
	Confidence  float64 `json:"confidence"`  // 0-1
}

// Driver is a factor that pushed the risk up, for display.
type Driver struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Summary      string  `json:"summary"`
	Contribution float64 `json:"contribution"` // in risk points (0-100 scale)
}

// SuggestedAction is a human-readable recommendation tied to a driver.
type SuggestedAction struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Addresses   []string `json:"addresses"` // factor keys this addresses
}

// LevelFromRisk maps a composite risk to a RiskLevel.
func LevelFromRisk(mainRisk int) RiskLevel {
	switch {
	case mainRisk < 30:
		return RiskLow
	case mainRisk < 60:
		return RiskModerate
	default:
		return RiskHigh
	}
}
