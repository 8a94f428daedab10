package ranking

// Tier is the color class of a metric cell.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierPoor      Tier = "Poor"
)

// Thresholds are the tier cut-offs of one column. For LowerIsBetter
// columns a value passes a cut-off by being at or below it.
type Thresholds struct {
	Excellent     float64 `json:"excellent"`
	Good          float64 `json:"good"`
	LowerIsBetter bool    `json:"lower_is_better"`
}

// ThresholdsFor returns the cut-offs of field.
func ThresholdsFor(field Field) Thresholds {
	switch field {
	case Accuracy, Precision:
		return Thresholds{Excellent: 85, Good: 80}
	case Recall:
		return Thresholds{Excellent: 80, Good: 75}
	case F1Score:
		return Thresholds{Excellent: 82, Good: 77}
	case AUCROC:
		return Thresholds{Excellent: 88, Good: 83}
	case TrainingTime:
		return Thresholds{Excellent: 2, Good: 4, LowerIsBetter: true}
	default:
		// Unknown columns never reach Good.
		return Thresholds{Excellent: 1e308, Good: 1e308}
	}
}

// Classify buckets value for the given column.
func Classify(value float64, field Field) Tier {
	th := ThresholdsFor(field)

	if th.LowerIsBetter {
		switch {
		case value <= th.Excellent:
			return TierExcellent
		case value <= th.Good:
			return TierGood
		default:
			return TierPoor
		}
	}

	switch {
	case value >= th.Excellent:
		return TierExcellent
	case value >= th.Good:
		return TierGood
	default:
		return TierPoor
	}
}
