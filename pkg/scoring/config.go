package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultWeights holds the additive weights for every threshold band.
// Each weight is a fraction; the engine multiplies the sum by 100.
type DefaultWeights struct {
	// Glucose
	GlucoseHigh     float64
	GlucoseElevated float64

	// BMI
	BMIObese      float64
	BMIOverweight float64

	// Age
	AgeSenior float64
	AgeMiddle float64

	// Single-band factors
	BloodPressureHigh float64
	PedigreeHigh      float64
}

// Defaults returns the default scoring weights. They sum to 1.0 when every
// top band fires.
func Defaults() DefaultWeights {
	return DefaultWeights{
		GlucoseHigh:     0.30,
		GlucoseElevated: 0.15,

		BMIObese:      0.25,
		BMIOverweight: 0.10,

		AgeSenior: 0.20,
		AgeMiddle: 0.10,

		BloodPressureHigh: 0.15,
		PedigreeHigh:      0.10,
	}
}

func (w *DefaultWeights) fields() map[string]*float64 {
	return map[string]*float64{
		"glucose_high":        &w.GlucoseHigh,
		"glucose_elevated":    &w.GlucoseElevated,
		"bmi_obese":           &w.BMIObese,
		"bmi_overweight":      &w.BMIOverweight,
		"age_senior":          &w.AgeSenior,
		"age_middle":          &w.AgeMiddle,
		"blood_pressure_high": &w.BloodPressureHigh,
		"pedigree_high":       &w.PedigreeHigh,
	}
}

// MaxSum is the largest total contribution the weights can produce: the
// higher band of each tiered factor plus every single-band factor.
func (w DefaultWeights) MaxSum() float64 {
	return math.Max(w.GlucoseHigh, w.GlucoseElevated) +
		math.Max(w.BMIObese, w.BMIOverweight) +
		math.Max(w.AgeSenior, w.AgeMiddle) +
		w.BloodPressureHigh +
		w.PedigreeHigh
}

// maxSumTolerance absorbs float rounding in sums such as the defaults.
const maxSumTolerance = 1e-9

// WithOverrides returns a copy of w with the named weights replaced.
// Unknown keys, weights outside [0,1] and sets whose MaxSum exceeds 1
// are rejected.
func (w DefaultWeights) WithOverrides(overrides map[string]float64) (DefaultWeights, error) {
	out := w
	fields := out.fields()
	for key, v := range overrides {
		ptr, ok := fields[key]
		if !ok {
			return w, fmt.Errorf("unknown scoring weight %q (known: %s)", key, strings.Join(WeightKeys(), ", "))
		}
		if v < 0 || v > 1 {
			return w, fmt.Errorf("scoring weight %s=%g outside [0, 1]", key, v)
		}
		*ptr = v
	}
	if sum := out.MaxSum(); sum > 1+maxSumTolerance {
		return w, fmt.Errorf("scoring weights can sum to %g, above 1", sum)
	}
	return out, nil
}

// WeightKeys lists the keys accepted by WithOverrides, sorted.
func WeightKeys() []string {
	var w DefaultWeights
	keys := make([]string, 0, 8)
	for k := range w.fields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
