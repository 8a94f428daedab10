package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/riskscope/riskscope/pkg/ranking"
	"github.com/riskscope/riskscope/pkg/surface"
)

func newFeaturesCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Show global feature importance and the evaluation dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeatures(cmd.OutOrStdout(), outputFmt)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")

	return cmd
}

func runFeatures(w io.Writer, outputFmt string) error {
	renderer, err := surface.ForFormat(outputFmt)
	if err != nil {
		return err
	}
	if err := renderer.RenderFeatures(w, ranking.FeatureImportances(), ranking.Dataset()); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}
