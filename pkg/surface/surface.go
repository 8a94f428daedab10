// Package surface defines output rendering for Riskscope results.
// Implementations handle different output targets: terminal, Markdown, JSON.
package surface

import (
	"fmt"
	"io"

	"github.com/riskscope/riskscope/pkg/ranking"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// Renderer produces formatted output for every Riskscope result type.
type Renderer interface {
	// Render writes a risk assessment.
	Render(w io.Writer, result *scoring.Assessment) error
	// RenderTable writes the sorted algorithm comparison table.
	RenderTable(w io.Writer, table ranking.Table) error
	// RenderFeatures writes the feature importance ranking and dataset summary.
	RenderFeatures(w io.Writer, features []ranking.FeatureImportance, dataset ranking.DatasetSummary) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
}
