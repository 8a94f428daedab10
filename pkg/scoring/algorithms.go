package scoring

// MaxProbability caps every algorithm prediction.
const MaxProbability = 95.0

// Algorithm is one simulated model: how much its prediction wobbles around
// the base risk, and the confidence it reports.
type Algorithm struct {
	Name       string  `json:"name"`
	Amplitude  float64 `json:"amplitude"`
	Confidence float64 `json:"confidence"`
}

// Algorithms returns the seven algorithm profiles in display order.
// Names match the entries of the ranking catalogue.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "XGBoost", Amplitude: 5, Confidence: 0.92},
		{Name: "LightGBM", Amplitude: 4, Confidence: 0.89},
		{Name: "Random Forest", Amplitude: 6, Confidence: 0.85},
		{Name: "Gradient Boosting", Amplitude: 5, Confidence: 0.87},
		{Name: "SVM", Amplitude: 7, Confidence: 0.81},
		{Name: "Logistic Regression", Amplitude: 6, Confidence: 0.79},
		{Name: "Decision Tree", Amplitude: 9, Confidence: 0.75},
	}
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > MaxProbability {
		return MaxProbability
	}
	return p
}
