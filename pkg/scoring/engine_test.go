package scoring_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/riskscope/riskscope/pkg/factors"
	"github.com/riskscope/riskscope/pkg/noise"
	"github.com/riskscope/riskscope/pkg/scoring"
)

func newEngine() *scoring.Engine {
	return scoring.NewEngine(scoring.DefaultFactors()...)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// allHigh crosses the top band of every factor.
func allHigh() factors.RiskFactors {
	f := factors.Defaults()
	f.Glucose = 150
	f.BMI = 35
	f.Age = 50
	f.BloodPressure = 95
	f.DiabetesPedigree = 1.5
	return f
}

func TestEngineMinimumInputs(t *testing.T) {
	result, err := newEngine().Compute(factors.Minimums(), noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if result.BaseRisk != 0 {
		t.Errorf("expected base risk 0, got %f", result.BaseRisk)
	}
	if result.MainRisk != 0 {
		t.Errorf("expected main risk 0, got %d", result.MainRisk)
	}
	if result.RiskLevel != scoring.RiskLow {
		t.Errorf("expected Low, got %s", result.RiskLevel)
	}
	if len(result.Breakdown) != 5 {
		t.Errorf("expected 5 breakdown entries, got %d", len(result.Breakdown))
	}
	if len(result.Drivers) != 0 {
		t.Errorf("expected no drivers, got %d", len(result.Drivers))
	}
	if len(result.SuggestedActions) != 0 {
		t.Errorf("expected no suggestions, got %d", len(result.SuggestedActions))
	}
}

func TestEngineMaximumInputs(t *testing.T) {
	result, err := newEngine().Compute(factors.Maximums(), noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if !approx(result.BaseRisk, 100) {
		t.Errorf("expected base risk 100, got %f", result.BaseRisk)
	}
	if len(result.Predictions) != 7 {
		t.Fatalf("expected 7 predictions, got %d", len(result.Predictions))
	}
	for _, p := range result.Predictions {
		if p.Probability != 95 {
			t.Errorf("%s probability = %f, want 95", p.Name, p.Probability)
		}
	}
	if result.MainRisk != 95 {
		t.Errorf("expected main risk 95, got %d", result.MainRisk)
	}
	if result.RiskLevel != scoring.RiskHigh {
		t.Errorf("expected High, got %s", result.RiskLevel)
	}
}

func TestEngineDeterministicWithSeed(t *testing.T) {
	e := newEngine()

	a, err := e.Compute(factors.Defaults(), noise.NewSeeded(42))
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	b, err := e.Compute(factors.Defaults(), noise.NewSeeded(42))
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different assessments:\n%+v\n%+v", a, b)
	}
}

func TestEngineGlucoseMonotonic(t *testing.T) {
	e := newEngine()
	prev := -1.0
	for g := 100.0; g <= 150; g++ {
		f := factors.Defaults()
		f.Glucose = g
		result, err := e.Compute(f, noise.Zero{})
		if err != nil {
			t.Fatalf("Compute(glucose=%v) error: %v", g, err)
		}
		if result.BaseRisk < prev {
			t.Errorf("base risk decreased at glucose=%v: %f < %f", g, result.BaseRisk, prev)
		}
		prev = result.BaseRisk
	}
}

func TestEngineScriptedNoise(t *testing.T) {
	// Defaults: only glucose 120 (> 110) fires, base risk 15.
	src := noise.NewScripted(5, -4, 6, -5, 7, -6, 9)

	result, err := newEngine().Compute(factors.Defaults(), src)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if !approx(result.BaseRisk, 15) {
		t.Errorf("expected base risk 15, got %f", result.BaseRisk)
	}

	want := []struct {
		name string
		prob float64
		conf float64
	}{
		{"XGBoost", 20, 0.92},
		{"LightGBM", 11, 0.89},
		{"Random Forest", 21, 0.85},
		{"Gradient Boosting", 10, 0.87},
		{"SVM", 22, 0.81},
		{"Logistic Regression", 9, 0.79},
		{"Decision Tree", 24, 0.75},
	}
	for i, w := range want {
		p := result.Predictions[i]
		if p.Name != w.name {
			t.Errorf("prediction[%d].Name = %q, want %q", i, p.Name, w.name)
		}
		if !approx(p.Probability, w.prob) {
			t.Errorf("%s probability = %f, want %f", w.name, p.Probability, w.prob)
		}
		if p.Confidence != w.conf {
			t.Errorf("%s confidence = %f, want %f", w.name, p.Confidence, w.conf)
		}
	}

	// mean(20,11,21,10,22,9,24) = 16.71
	if result.MainRisk != 17 {
		t.Errorf("expected main risk 17, got %d", result.MainRisk)
	}
	if result.RiskLevel != scoring.RiskLow {
		t.Errorf("expected Low, got %s", result.RiskLevel)
	}
}

func TestEngineClampsProbability(t *testing.T) {
	e := newEngine()

	low, err := e.Compute(factors.Minimums(), noise.NewScripted(-5, -4, -6, -5, -7, -6, -9))
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	for _, p := range low.Predictions {
		if p.Probability != 0 {
			t.Errorf("%s probability = %f, want clamp to 0", p.Name, p.Probability)
		}
	}

	// Base risk 90 plus positive noise pushes every model past the cap
	// except LightGBM (90 + 4).
	f := allHigh()
	f.DiabetesPedigree = 0.5
	high, err := e.Compute(f, noise.NewScripted(5, 4, 6, 5, 7, 6, 9))
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	for _, p := range high.Predictions {
		if p.Probability > 95 || p.Probability < 0 {
			t.Errorf("%s probability %f outside [0, 95]", p.Name, p.Probability)
		}
	}
	if !approx(high.Predictions[1].Probability, 94) {
		t.Errorf("LightGBM probability = %f, want 94", high.Predictions[1].Probability)
	}
	if high.MainRisk != 95 {
		t.Errorf("expected main risk 95, got %d", high.MainRisk)
	}
}

func TestEngineModerate(t *testing.T) {
	f := factors.Defaults()
	f.Glucose = 150
	f.BloodPressure = 95

	result, err := newEngine().Compute(f, noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if result.MainRisk != 45 {
		t.Errorf("expected main risk 45, got %d", result.MainRisk)
	}
	if result.RiskLevel != scoring.RiskModerate {
		t.Errorf("expected Moderate, got %s", result.RiskLevel)
	}
}

func TestEngineDriversAndSuggestions(t *testing.T) {
	result, err := newEngine().Compute(allHigh(), noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	wantDrivers := []string{"glucose", "bmi", "age", "blood_pressure", "diabetes_pedigree"}
	if len(result.Drivers) != len(wantDrivers) {
		t.Fatalf("expected %d drivers, got %d", len(wantDrivers), len(result.Drivers))
	}
	for i, key := range wantDrivers {
		if result.Drivers[i].Key != key {
			t.Errorf("driver[%d] = %s, want %s", i, result.Drivers[i].Key, key)
		}
	}
	if !approx(result.Drivers[0].Contribution, 30) {
		t.Errorf("glucose driver contribution = %f, want 30", result.Drivers[0].Contribution)
	}

	// Age is skipped and the list is capped at three.
	wantActions := []string{"glucose", "bmi", "blood_pressure"}
	if len(result.SuggestedActions) != len(wantActions) {
		t.Fatalf("expected %d suggestions, got %d", len(wantActions), len(result.SuggestedActions))
	}
	for i, key := range wantActions {
		if result.SuggestedActions[i].Addresses[0] != key {
			t.Errorf("suggestion[%d] addresses %v, want %s", i, result.SuggestedActions[i].Addresses, key)
		}
	}
}

func TestEngineConfidence(t *testing.T) {
	result, err := newEngine().Compute(factors.Defaults(), noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if !approx(result.Confidence, 0.84) {
		t.Errorf("expected mean confidence 0.84, got %f", result.Confidence)
	}
}

func TestEngineInvalidInput(t *testing.T) {
	f := factors.Defaults()
	f.Glucose = 250

	_, err := newEngine().Compute(f, noise.Zero{})
	if !errors.Is(err, factors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEngineNilNoise(t *testing.T) {
	_, err := newEngine().Compute(factors.Defaults(), nil)
	if err == nil {
		t.Error("expected error for nil noise source")
	}
}

func TestEngineNoFactors(t *testing.T) {
	result, err := scoring.NewEngine().Compute(allHigh(), noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if result.BaseRisk != 0 || result.MainRisk != 0 {
		t.Errorf("expected zero risk with no factors, got base=%f main=%d", result.BaseRisk, result.MainRisk)
	}
	if len(result.Predictions) != 7 {
		t.Errorf("expected 7 predictions, got %d", len(result.Predictions))
	}
}

func TestLevelFromRisk(t *testing.T) {
	tests := []struct {
		risk int
		want scoring.RiskLevel
	}{
		{0, scoring.RiskLow},
		{29, scoring.RiskLow},
		{30, scoring.RiskModerate},
		{59, scoring.RiskModerate},
		{60, scoring.RiskHigh},
		{95, scoring.RiskHigh},
	}
	for _, tt := range tests {
		if got := scoring.LevelFromRisk(tt.risk); got != tt.want {
			t.Errorf("LevelFromRisk(%d) = %s, want %s", tt.risk, got, tt.want)
		}
	}
}

func TestWeightOverrides(t *testing.T) {
	w, err := scoring.Defaults().WithOverrides(map[string]float64{"glucose_elevated": 0.2})
	if err != nil {
		t.Fatalf("WithOverrides() error: %v", err)
	}
	if w.GlucoseElevated != 0.2 {
		t.Errorf("GlucoseElevated = %f, want 0.2", w.GlucoseElevated)
	}
	if w.GlucoseHigh != 0.30 {
		t.Errorf("GlucoseHigh changed to %f", w.GlucoseHigh)
	}

	e := scoring.NewEngine(scoring.FactorsFromWeights(w)...)
	result, err := e.Compute(factors.Defaults(), noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if !approx(result.BaseRisk, 20) {
		t.Errorf("expected base risk 20, got %f", result.BaseRisk)
	}
}

func TestWeightOverridesRejectsBadInput(t *testing.T) {
	if _, err := scoring.Defaults().WithOverrides(map[string]float64{"cholesterol": 0.1}); err == nil {
		t.Error("expected error for unknown weight key")
	}
	if _, err := scoring.Defaults().WithOverrides(map[string]float64{"bmi_obese": 1.5}); err == nil {
		t.Error("expected error for weight above 1")
	}
}

func TestWeightOverridesRejectsExcessiveSum(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]float64
		wantErr   bool
	}{
		{"defaults", nil, false},
		{"lower band raised within budget", map[string]float64{"glucose_elevated": 0.3}, false},
		{"top bands at one", map[string]float64{"glucose_high": 1, "bmi_obese": 1, "age_senior": 1}, true},
		{"lower band pushes over", map[string]float64{"age_middle": 0.3}, true},
		{"single band pushes over", map[string]float64{"pedigree_high": 0.2}, true},
		{"rebalanced to one", map[string]float64{"glucose_high": 0.4, "bmi_obese": 0.15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := scoring.Defaults().WithOverrides(tt.overrides)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, max sum %f", w.MaxSum())
				}
				return
			}
			if err != nil {
				t.Fatalf("WithOverrides() error: %v", err)
			}

			fs, err := scoring.FactorsFromConfig(tt.overrides)
			if err != nil {
				t.Fatalf("FactorsFromConfig() error: %v", err)
			}
			result, err := scoring.NewEngine(fs...).Compute(factors.Maximums(), noise.Zero{})
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if result.BaseRisk < 0 || result.BaseRisk > 100+1e-9 {
				t.Errorf("base risk %f outside [0, 100]", result.BaseRisk)
			}
		})
	}
}

func TestBaseRiskClampedForCustomFactors(t *testing.T) {
	heavy := scoring.DefaultWeights{GlucoseHigh: 1, BMIObese: 1, AgeSenior: 1}
	e := scoring.NewEngine(scoring.FactorsFromWeights(heavy)...)

	result, err := e.Compute(factors.Maximums(), noise.Zero{})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if result.BaseRisk != 100 {
		t.Errorf("expected base risk clamped to 100, got %f", result.BaseRisk)
	}
	if result.MainRisk != 95 {
		t.Errorf("expected main risk 95, got %d", result.MainRisk)
	}
}

func TestWeightKeys(t *testing.T) {
	keys := scoring.WeightKeys()
	if len(keys) != 8 {
		t.Errorf("expected 8 weight keys, got %d", len(keys))
	}
	if keys[0] != "age_middle" {
		t.Errorf("expected sorted keys, first = %q", keys[0])
	}
}
