package scoring

// DefaultFactors returns the standard set of threshold factors with
// default weights.
func DefaultFactors() []Factor {
	return FactorsFromWeights(Defaults())
}

// FactorsFromWeights builds the five threshold factors with the standard
// cut-offs and the given weights.
func FactorsFromWeights(w DefaultWeights) []Factor {
	return []Factor{
		&GlucoseFactor{
			HighAbove:      140,
			HighWeight:     w.GlucoseHigh,
			ElevatedAbove:  110,
			ElevatedWeight: w.GlucoseElevated,
		},
		&BMIFactor{
			ObeseAbove:       30,
			ObeseWeight:      w.BMIObese,
			OverweightAbove:  25,
			OverweightWeight: w.BMIOverweight,
		},
		&AgeFactor{
			SeniorAbove:  45,
			SeniorWeight: w.AgeSenior,
			MiddleAbove:  35,
			MiddleWeight: w.AgeMiddle,
		},
		&BloodPressureFactor{
			HighAbove: 90,
			Weight:    w.BloodPressureHigh,
		},
		&PedigreeFactor{
			HighAbove: 1.0,
			Weight:    w.PedigreeHigh,
		},
	}
}

// FactorsFromConfig builds the threshold factors from the default weights
// with the configured overrides applied.
func FactorsFromConfig(overrides map[string]float64) ([]Factor, error) {
	w, err := Defaults().WithOverrides(overrides)
	if err != nil {
		return nil, err
	}
	return FactorsFromWeights(w), nil
}
