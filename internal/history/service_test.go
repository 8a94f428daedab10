package history

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskscope/riskscope/pkg/factors"
	"github.com/riskscope/riskscope/pkg/noise"
	"github.com/riskscope/riskscope/pkg/scoring"
)

func sampleAssessment(t *testing.T) *scoring.Assessment {
	t.Helper()
	f := factors.Defaults()
	f.Glucose = 150
	a, err := scoring.NewEngine(scoring.DefaultFactors()...).Compute(f, noise.NewSeeded(7))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return a
}

func TestNewRecord(t *testing.T) {
	a := sampleAssessment(t)

	r, err := NewRecord("id-1", 7, a)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if r.ID != "id-1" || r.Seed != 7 {
		t.Errorf("ID/Seed = %q/%d, want id-1/7", r.ID, r.Seed)
	}
	if r.MainRisk != a.MainRisk {
		t.Errorf("MainRisk = %d, want %d", r.MainRisk, a.MainRisk)
	}
	if r.RiskLevel != string(a.RiskLevel) {
		t.Errorf("RiskLevel = %q, want %q", r.RiskLevel, a.RiskLevel)
	}
	if !strings.Contains(string(r.Factors), `"glucose":150`) {
		t.Errorf("Factors = %s, want glucose 150", r.Factors)
	}
}

func TestRecordDecode(t *testing.T) {
	a := sampleAssessment(t)

	r, err := NewRecord("id-1", 7, a)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}

	got, err := r.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.MainRisk != a.MainRisk || got.BaseRisk != a.BaseRisk {
		t.Errorf("decoded %d/%g, want %d/%g", got.MainRisk, got.BaseRisk, a.MainRisk, a.BaseRisk)
	}
	if len(got.Predictions) != len(a.Predictions) {
		t.Errorf("decoded %d predictions, want %d", len(got.Predictions), len(a.Predictions))
	}
}

func TestRecordDecodeInvalid(t *testing.T) {
	r := Record{ID: "bad", Assessment: []byte("{not json")}
	if _, err := r.Decode(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewService(t *testing.T) {
	// NewService should not panic with nil db (it just stores the reference).
	svc := NewService(nil)
	if svc == nil {
		t.Fatal("NewService returned nil")
	}
}

// fakeRow replays fixed column values into Scan destinations.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *int:
			*p = r.values[i].(int)
		case *float64:
			*p = r.values[i].(float64)
		case *[]byte:
			*p = r.values[i].([]byte)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanRecord(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		row      fakeRow
		wantSeed uint64
		wantErr  bool
	}{
		{
			name: "full width seed",
			row: fakeRow{values: []any{
				"id-1", "18446744073709551615", 45, "Moderate", 45.0,
				[]byte(`{}`), []byte(`{}`), created,
			}},
			wantSeed: 18446744073709551615,
		},
		{
			name: "bad seed",
			row: fakeRow{values: []any{
				"id-1", "-1", 45, "Moderate", 45.0,
				[]byte(`{}`), []byte(`{}`), created,
			}},
			wantErr: true,
		},
		{
			name:    "scan error",
			row:     fakeRow{err: errors.New("boom")},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := scanRecord(tc.row)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Seed != tc.wantSeed {
				t.Errorf("Seed = %d, want %d", r.Seed, tc.wantSeed)
			}
			if !r.CreatedAt.Equal(created) {
				t.Errorf("CreatedAt = %v, want %v", r.CreatedAt, created)
			}
		})
	}
}
