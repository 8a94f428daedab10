package factors

import "math"

// Param describes one adjustable input: its bounds, slider step and the
// text shown next to it.
type Param struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Step        float64 `json:"step"`
	Unit        string  `json:"unit,omitempty"`
	Description string  `json:"description"`

	get func(RiskFactors) float64
	set func(*RiskFactors, float64)
}

// Get reads this parameter's value from f.
func (p Param) Get(f RiskFactors) float64 { return p.get(f) }

// Snap clamps v into [Min, Max] and rounds it to the nearest step, the way
// a slider would before emitting a value.
func (p Param) Snap(v float64) float64 {
	if v < p.Min {
		v = p.Min
	}
	if v > p.Max {
		v = p.Max
	}
	steps := math.Round((v - p.Min) / p.Step)
	// Round off float noise left by 0.1 and 0.01 steps.
	snapped := math.Round((p.Min+steps*p.Step)*1e6) / 1e6
	return math.Min(snapped, p.Max)
}

var params = []Param{
	{
		Key: "pregnancies", Label: "Pregnancies", Min: 0, Max: 17, Step: 1,
		Description: "Number of times pregnant",
		get:         func(f RiskFactors) float64 { return f.Pregnancies },
		set:         func(f *RiskFactors, v float64) { f.Pregnancies = v },
	},
	{
		Key: "glucose", Label: "Glucose Level", Min: 70, Max: 200, Step: 1, Unit: "mg/dL",
		Description: "Plasma glucose concentration",
		get:         func(f RiskFactors) float64 { return f.Glucose },
		set:         func(f *RiskFactors, v float64) { f.Glucose = v },
	},
	{
		Key: "blood_pressure", Label: "Blood Pressure", Min: 50, Max: 120, Step: 1, Unit: "mmHg",
		Description: "Diastolic blood pressure",
		get:         func(f RiskFactors) float64 { return f.BloodPressure },
		set:         func(f *RiskFactors, v float64) { f.BloodPressure = v },
	},
	{
		Key: "skin_thickness", Label: "Skin Thickness", Min: 10, Max: 60, Step: 1, Unit: "mm",
		Description: "Triceps skin fold thickness",
		get:         func(f RiskFactors) float64 { return f.SkinThickness },
		set:         func(f *RiskFactors, v float64) { f.SkinThickness = v },
	},
	{
		Key: "insulin", Label: "Insulin Level", Min: 0, Max: 800, Step: 10, Unit: "μU/mL",
		Description: "2-Hour serum insulin",
		get:         func(f RiskFactors) float64 { return f.Insulin },
		set:         func(f *RiskFactors, v float64) { f.Insulin = v },
	},
	{
		Key: "bmi", Label: "BMI", Min: 15, Max: 50, Step: 0.1, Unit: "kg/m²",
		Description: "Body mass index",
		get:         func(f RiskFactors) float64 { return f.BMI },
		set:         func(f *RiskFactors, v float64) { f.BMI = v },
	},
	{
		Key: "diabetes_pedigree", Label: "Diabetes Pedigree", Min: 0.05, Max: 2.5, Step: 0.01,
		Description: "Genetic diabetes likelihood",
		get:         func(f RiskFactors) float64 { return f.DiabetesPedigree },
		set:         func(f *RiskFactors, v float64) { f.DiabetesPedigree = v },
	},
	{
		Key: "age", Label: "Age", Min: 20, Max: 80, Step: 1, Unit: "years",
		Description: "Age in years",
		get:         func(f RiskFactors) float64 { return f.Age },
		set:         func(f *RiskFactors, v float64) { f.Age = v },
	},
}

// Params returns the eight parameter definitions in display order.
func Params() []Param {
	out := make([]Param, len(params))
	copy(out, params)
	return out
}

// Lookup finds a parameter by key. The camelCase spellings used by the web
// client ("bloodPressure", "diabetesPedigree", ...) are accepted as well.
func Lookup(key string) (Param, bool) {
	if k, ok := aliases[key]; ok {
		key = k
	}
	for _, p := range params {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

var aliases = map[string]string{
	"bloodPressure":    "blood_pressure",
	"skinThickness":    "skin_thickness",
	"diabetesPedigree": "diabetes_pedigree",
}
