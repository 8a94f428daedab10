package surface_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/riskscope/riskscope/pkg/ranking"
	"github.com/riskscope/riskscope/pkg/scoring"
	"github.com/riskscope/riskscope/pkg/surface"
)

func TestMarkdownRenderer_Assessment(t *testing.T) {
	r := &surface.MarkdownRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	wants := []string{
		"## Riskscope: 45% Moderate Risk :orange_circle:",
		"| Glucose | 150 | > 140 | +30.0 |",
		"| Random Forest | 47% | 87% |",
		"### Suggestions",
		"- **Monitor blood pressure**",
	}
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestMarkdownRenderer_NoSuggestions(t *testing.T) {
	r := &surface.MarkdownRenderer{}
	var buf bytes.Buffer

	result := &scoring.Assessment{MainRisk: 10, RiskLevel: scoring.RiskLow}
	if err := r.Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "### Suggestions") {
		t.Error("expected no suggestions section")
	}
	if !strings.Contains(buf.String(), ":green_circle:") {
		t.Error("expected low risk icon")
	}
}

func TestMarkdownRenderer_Table(t *testing.T) {
	r := &surface.MarkdownRenderer{}
	var buf bytes.Buffer

	state := ranking.DefaultSortState().Select(ranking.TrainingTime)
	if err := r.RenderTable(&buf, ranking.Rank(state)); err != nil {
		t.Fatalf("RenderTable() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Time (s) ↓") {
		t.Error("expected arrow on training time column")
	}
	if !strings.Contains(output, "**XGBoost** (Top Performer)") {
		t.Error("expected top performer marker")
	}
	// Header, separator and seven rows.
	if lines := strings.Count(output, "\n"); lines != 9 {
		t.Errorf("expected 9 lines, got %d", lines)
	}
}

func TestJSONRenderer_Assessment(t *testing.T) {
	r := &surface.JSONRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["main_risk"] != float64(45) {
		t.Errorf("main_risk = %v, want 45", decoded["main_risk"])
	}
	if decoded["risk_level"] != "Moderate" {
		t.Errorf("risk_level = %v, want Moderate", decoded["risk_level"])
	}
}

func TestJSONRenderer_Features(t *testing.T) {
	r := &surface.JSONRenderer{}
	var buf bytes.Buffer

	if err := r.RenderFeatures(&buf, ranking.FeatureImportances(), ranking.Dataset()); err != nil {
		t.Fatalf("RenderFeatures() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"feature": "Glucose Level"`) {
		t.Error("expected feature entries")
	}
	if !strings.Contains(buf.String(), `"samples": 768`) {
		t.Error("expected dataset summary")
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    surface.Renderer
		wantErr bool
	}{
		{"", &surface.TerminalRenderer{}, false},
		{"text", &surface.TerminalRenderer{}, false},
		{"json", &surface.JSONRenderer{}, false},
		{"markdown", &surface.MarkdownRenderer{}, false},
		{"md", &surface.MarkdownRenderer{}, false},
		{"html", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := surface.ForFormat(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ForFormat(%q) error: %v", tt.format, err)
			}
			switch tt.want.(type) {
			case *surface.TerminalRenderer:
				if _, ok := got.(*surface.TerminalRenderer); !ok {
					t.Errorf("got %T, want *TerminalRenderer", got)
				}
			case *surface.JSONRenderer:
				if _, ok := got.(*surface.JSONRenderer); !ok {
					t.Errorf("got %T, want *JSONRenderer", got)
				}
			case *surface.MarkdownRenderer:
				if _, ok := got.(*surface.MarkdownRenderer); !ok {
					t.Errorf("got %T, want *MarkdownRenderer", got)
				}
			}
		})
	}
}
