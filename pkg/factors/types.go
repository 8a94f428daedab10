// Package factors defines the clinical input record fed into the Riskscope
// scoring engine, along with the parameter definitions that bound it.
package factors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a RiskFactors value falls outside its
// declared range or is not a finite number.
var ErrInvalidInput = errors.New("invalid input")

// RiskFactors is one set of clinical parameters. Replaced wholesale on
// every change; never mutated in place by the engine.
type RiskFactors struct {
	Pregnancies      float64 `json:"pregnancies" yaml:"pregnancies"`
	Glucose          float64 `json:"glucose" yaml:"glucose"`                     // mg/dL
	BloodPressure    float64 `json:"blood_pressure" yaml:"blood_pressure"`       // mmHg, diastolic
	SkinThickness    float64 `json:"skin_thickness" yaml:"skin_thickness"`       // mm
	Insulin          float64 `json:"insulin" yaml:"insulin"`                     // μU/mL
	BMI              float64 `json:"bmi" yaml:"bmi"`                             // kg/m²
	DiabetesPedigree float64 `json:"diabetes_pedigree" yaml:"diabetes_pedigree"` // unitless
	Age              float64 `json:"age" yaml:"age"`                             // years
}

// Defaults returns the values the calculator starts with.
func Defaults() RiskFactors {
	return RiskFactors{
		Pregnancies:      1,
		Glucose:          120,
		BloodPressure:    80,
		SkinThickness:    25,
		Insulin:          150,
		BMI:              25,
		DiabetesPedigree: 0.5,
		Age:              35,
	}
}

// Minimums returns a record with every field at its lower bound.
func Minimums() RiskFactors {
	var f RiskFactors
	for _, p := range Params() {
		p.set(&f, p.Min)
	}
	return f
}

// Maximums returns a record with every field at its upper bound.
func Maximums() RiskFactors {
	var f RiskFactors
	for _, p := range Params() {
		p.set(&f, p.Max)
	}
	return f
}

// Validate checks every field against its declared range. The returned
// error wraps ErrInvalidInput and names the first offending field.
func (f RiskFactors) Validate() error {
	for _, p := range Params() {
		v := p.Get(f)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, p.Key)
		}
		if v < p.Min || v > p.Max {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrInvalidInput, p.Key, v, p.Min, p.Max)
		}
	}
	return nil
}

// With returns a copy of f with the named field replaced.
func (f RiskFactors) With(key string, value float64) (RiskFactors, error) {
	p, ok := Lookup(key)
	if !ok {
		return f, fmt.Errorf("%w: unknown parameter %q", ErrInvalidInput, key)
	}
	p.set(&f, value)
	return f, nil
}

// UnmarshalJSON overlays the keys present in data onto f, so a partial
// object only replaces what it names. Keys may be snake_case or camelCase.
// Unknown keys, null values and a field given under both spellings are
// rejected.
func (f *RiskFactors) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	seen := make(map[string]string, len(raw))
	out := *f
	for key, msg := range raw {
		p, ok := Lookup(key)
		if !ok {
			return fmt.Errorf("%w: unknown parameter %q", ErrInvalidInput, key)
		}
		if prev, dup := seen[p.Key]; dup {
			return fmt.Errorf("%w: %s given as both %q and %q", ErrInvalidInput, p.Key, prev, key)
		}
		seen[p.Key] = key

		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			return fmt.Errorf("%w: %s is null", ErrInvalidInput, key)
		}
		var v float64
		if err := json.Unmarshal(msg, &v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
		}
		p.set(&out, v)
	}
	*f = out
	return nil
}
