package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/riskscope/riskscope/pkg/factors"
)

func newParamsCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the adjustable risk factors with their ranges and defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParams(cmd.OutOrStdout(), outputFmt)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

type paramRow struct {
	factors.Param
	Flag    string  `json:"flag"`
	Default float64 `json:"default"`
}

func runParams(w io.Writer, outputFmt string) error {
	defaults := factors.Defaults()
	var rows []paramRow
	for _, p := range factors.Params() {
		rows = append(rows, paramRow{Param: p, Flag: "--" + flagName(p.Key), Default: p.Get(defaults)})
	}

	switch outputFmt {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	case "", "text":
		fmt.Fprintf(w, "%-21s %-16s %-12s %-6s %-8s %s\n", "Flag", "Range", "Unit", "Step", "Default", "Description")
		for _, r := range rows {
			fmt.Fprintf(w, "%-21s %-16s %-12s %-6g %-8g %s\n",
				r.Flag, fmt.Sprintf("%g-%g", r.Min, r.Max), r.Unit, r.Step, r.Default, r.Description)
		}
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", outputFmt)
	}
	return nil
}
