package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskscope/riskscope/pkg/ranking"
	"github.com/riskscope/riskscope/pkg/surface"
)

func newAlgorithmsCmd() *cobra.Command {
	var (
		sortBy    string
		order     string
		selects   []string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "Compare the reference performance of the risk algorithms",
		Long: `Prints the algorithm comparison table. --select applies column clicks
in order: selecting the active column flips the direction, selecting a new
column sorts it descending.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlgorithms(algorithmsOpts{
				sortBy:    sortBy,
				order:     order,
				selects:   selects,
				outputFmt: outputFmt,
				out:       cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "accuracy", "Sort column: accuracy, precision, recall, f1_score, auc_roc or training_time")
	cmd.Flags().StringVar(&order, "order", "", "Sort order: asc or desc (default desc)")
	cmd.Flags().StringArrayVar(&selects, "select", nil, "Column click to apply after sorting (repeatable)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")

	return cmd
}

type algorithmsOpts struct {
	sortBy    string
	order     string
	selects   []string
	outputFmt string
	out       io.Writer
}

// sortState builds the table state from the sort flags and column clicks.
func sortState(opts algorithmsOpts) (ranking.SortState, error) {
	state := ranking.DefaultSortState()

	if opts.sortBy != "" {
		field, err := ranking.ParseField(opts.sortBy)
		if err != nil {
			return state, err
		}
		state = ranking.SortState{SortBy: field, Order: ranking.Descending}
	}
	if opts.order != "" {
		o, err := ranking.ParseOrder(opts.order)
		if err != nil {
			return state, err
		}
		state.Order = o
	}
	for _, s := range opts.selects {
		field, err := ranking.ParseField(s)
		if err != nil {
			return state, err
		}
		state = state.Select(field)
	}
	return state, nil
}

func runAlgorithms(opts algorithmsOpts) error {
	state, err := sortState(opts)
	if err != nil {
		return err
	}

	renderer, err := surface.ForFormat(opts.outputFmt)
	if err != nil {
		return err
	}
	if err := renderer.RenderTable(opts.out, ranking.Rank(state)); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if _, ok := renderer.(*surface.TerminalRenderer); ok {
		printHighlights(opts.out)
	}
	return nil
}

func printHighlights(w io.Writer) {
	var names []string
	for _, m := range ranking.TopPerformers() {
		names = append(names, m.Name)
	}
	best := ranking.BestOverall()
	fastest := ranking.Fastest()

	fmt.Fprintf(w, "Top performers: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "Best overall:   %s (%.1f%% accuracy, %.1f%% AUC-ROC)\n", best.Name, best.Accuracy, best.AUCROC)
	fmt.Fprintf(w, "Fastest:        %s (%.1fs training)\n", fastest.Name, fastest.TrainingTime)
}
