package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/riskscope/riskscope/pkg/ranking"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// MarkdownRenderer produces GitHub-flavoured Markdown. The service stores
// assessment reports in this format.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *scoring.Assessment) error {
	_, err := io.WriteString(w, buildAssessmentMarkdown(result))
	return err
}

func (r *MarkdownRenderer) RenderTable(w io.Writer, table ranking.Table) error {
	_, err := io.WriteString(w, buildTableMarkdown(table))
	return err
}

func (r *MarkdownRenderer) RenderFeatures(w io.Writer, features []ranking.FeatureImportance, dataset ranking.DatasetSummary) error {
	var sb strings.Builder

	sb.WriteString("## Global Feature Importance\n\n")
	sb.WriteString("| # | Feature | Importance |\n|---|---------|------------|\n")
	for _, f := range features {
		sb.WriteString(fmt.Sprintf("| %d | %s | %.1f%% |\n", f.Rank, f.Feature, f.Importance*100))
	}
	sb.WriteString("\n### Dataset\n\n")
	sb.WriteString(fmt.Sprintf("- Total samples: %d\n", dataset.Samples))
	sb.WriteString(fmt.Sprintf("- Features: %d\n", dataset.Features))
	sb.WriteString(fmt.Sprintf("- Positive cases: %.1f%%\n", dataset.PositiveRate))
	sb.WriteString(fmt.Sprintf("- Cross validation: %s\n", dataset.CrossValidation))

	_, err := io.WriteString(w, sb.String())
	return err
}

func buildAssessmentMarkdown(result *scoring.Assessment) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Riskscope: %d%% %s Risk %s\n\n", result.MainRisk, result.RiskLevel, levelIcon(result.RiskLevel)))
	sb.WriteString(fmt.Sprintf("Base risk %.1f, mean confidence %.0f%%.\n\n", result.BaseRisk, result.Confidence*100))

	// Inputs
	sb.WriteString("### Inputs\n\n")
	sb.WriteString("| Factor | Value | Band | Contribution |\n|--------|-------|------|--------------|\n")
	for _, fr := range result.Breakdown {
		sb.WriteString(fmt.Sprintf("| %s | %g | %s | +%.1f |\n", fr.Name, fr.Value, fr.Band, fr.Contribution*100))
	}
	sb.WriteString("\n")

	// Predictions
	sb.WriteString("### Algorithm Predictions\n\n")
	sb.WriteString("| Algorithm | Probability | Confidence |\n|-----------|-------------|------------|\n")
	for _, p := range result.Predictions {
		sb.WriteString(fmt.Sprintf("| %s | %.0f%% | %.0f%% |\n", p.Name, p.Probability, p.Confidence*100))
	}
	sb.WriteString("\n")

	// Suggestions
	if len(result.SuggestedActions) > 0 {
		sb.WriteString("### Suggestions\n\n")
		for _, sa := range result.SuggestedActions {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", sa.Title, sa.Description))
		}
	}

	return sb.String()
}

func buildTableMarkdown(table ranking.Table) string {
	var sb strings.Builder

	sb.WriteString("| Algorithm |")
	for _, f := range ranking.Fields() {
		label := f.Label()
		if f == table.State.SortBy {
			label += " " + table.State.Order.Arrow()
		}
		sb.WriteString(fmt.Sprintf(" %s |", label))
	}
	sb.WriteString("\n|-----------|")
	for range ranking.Fields() {
		sb.WriteString("------|")
	}
	sb.WriteString("\n")

	for _, row := range table.Rows {
		name := row.Name
		if row.IsTopPerformer {
			name = fmt.Sprintf("**%s** (Top Performer)", row.Name)
		}
		sb.WriteString(fmt.Sprintf("| %s |", name))
		for _, c := range row.Cells {
			sb.WriteString(fmt.Sprintf(" %s %.1f |", tierIcon(c.Tier), c.Value))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func levelIcon(level scoring.RiskLevel) string {
	switch level {
	case scoring.RiskHigh:
		return ":red_circle:"
	case scoring.RiskModerate:
		return ":orange_circle:"
	default:
		return ":green_circle:"
	}
}

func tierIcon(tier ranking.Tier) string {
	switch tier {
	case ranking.TierExcellent:
		return ":green_circle:"
	case ranking.TierGood:
		return ":yellow_circle:"
	default:
		return ":red_circle:"
	}
}
