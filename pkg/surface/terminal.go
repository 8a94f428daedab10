package surface

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/riskscope/riskscope/pkg/ranking"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// TerminalRenderer renders results as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

const barWidth = 20

func levelColor(level scoring.RiskLevel) string {
	if noColor() {
		return ""
	}
	switch level {
	case scoring.RiskLow:
		return colorGreen
	case scoring.RiskModerate:
		return colorYellow
	case scoring.RiskHigh:
		return colorRed
	default:
		return ""
	}
}

func tierColor(tier ranking.Tier) string {
	if noColor() {
		return ""
	}
	switch tier {
	case ranking.TierExcellent:
		return colorGreen
	case ranking.TierGood:
		return colorYellow
	case ranking.TierPoor:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// bar draws a fixed-width progress bar for a 0-100 value.
func bar(value float64, width int) string {
	filled := int(math.Round(value / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.Assessment) error {
	lc := levelColor(result.RiskLevel)

	// Header
	fmt.Fprintf(w, "%s\n",
		bold(fmt.Sprintf("Riskscope: %d%% %s Risk",
			result.MainRisk, colored(string(result.RiskLevel), lc))))
	fmt.Fprintf(w, "Average prediction across %d algorithms (base risk %.1f, mean confidence %.0f%%)\n\n",
		len(result.Predictions), result.BaseRisk, result.Confidence*100)

	// Predictions
	fmt.Fprintln(w, "Algorithm predictions:")
	for _, p := range result.Predictions {
		fmt.Fprintf(w, "  %-20s %3.0f%%  %s  %s\n",
			p.Name, p.Probability,
			colored(bar(p.Probability, barWidth), lc),
			dim(fmt.Sprintf("(%.0f%% confident)", p.Confidence*100)))
	}
	fmt.Fprintln(w)

	// Drivers
	if len(result.Drivers) == 0 {
		fmt.Fprintln(w, "No risk factors above threshold.")
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "Risk drivers:")
		for _, d := range result.Drivers {
			fmt.Fprintf(w, "  (+%.1f) %s  %s\n", d.Contribution, bold(d.Name), dim(d.Summary))
		}
		fmt.Fprintln(w)
	}

	// Suggestions
	if len(result.SuggestedActions) > 0 {
		fmt.Fprintln(w, "Suggested actions:")
		for _, sa := range result.SuggestedActions {
			fmt.Fprintf(w, "  • %s\n", sa.Title)
			if sa.Description != "" {
				for _, line := range wrapText(sa.Description, 70) {
					fmt.Fprintf(w, "    %s\n", dim(line))
				}
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

func (r *TerminalRenderer) RenderTable(w io.Writer, table ranking.Table) error {
	fields := ranking.Fields()

	// Header; the active column carries the direction arrow.
	fmt.Fprintf(w, "%-22s", "Algorithm")
	for _, f := range fields {
		label := f.Label()
		if f == table.State.SortBy {
			label += " " + table.State.Order.Arrow()
		}
		fmt.Fprintf(w, " %15s", label)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 22+16*len(fields)))

	for _, row := range table.Rows {
		name := row.Name
		if row.IsTopPerformer {
			name += " ★"
		}
		fmt.Fprintf(w, "%-22s", name)
		for _, c := range row.Cells {
			// Pad before coloring so escape codes do not skew the columns.
			cell := fmt.Sprintf(" %15.1f", c.Value)
			fmt.Fprint(w, colored(cell, tierColor(c.Tier)))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", dim(fmt.Sprintf("Sorted by %s, %s. ★ = top performer.",
		table.State.SortBy.Label(), orderWord(table.State.Order))))

	return nil
}

func (r *TerminalRenderer) RenderFeatures(w io.Writer, features []ranking.FeatureImportance, dataset ranking.DatasetSummary) error {
	fmt.Fprintln(w, bold("Global feature importance"))
	var top float64
	for _, f := range features {
		top = math.Max(top, f.Importance)
	}
	for _, f := range features {
		// Bars are scaled to the most important feature.
		scaled := 0.0
		if top > 0 {
			scaled = f.Importance / top * 100
		}
		fmt.Fprintf(w, "  #%d %-20s %5.1f%%  %s\n", f.Rank, f.Feature, f.Importance*100, bar(scaled, barWidth))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold("Dataset"))
	fmt.Fprintf(w, "  %d samples, %d features, %.1f%% positive cases, %s cross validation\n",
		dataset.Samples, dataset.Features, dataset.PositiveRate, dataset.CrossValidation)
	for _, p := range dataset.Protocol {
		fmt.Fprintf(w, "  ✓ %s\n", p)
	}
	fmt.Fprintln(w)

	return nil
}

func orderWord(o ranking.Order) string {
	if o == ranking.Ascending {
		return "ascending"
	}
	return "descending"
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
