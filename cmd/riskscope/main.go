// Package main provides the riskscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "riskscope",
		Short: "Diabetes risk scoring and algorithm comparison",
		Long: `Riskscope scores eight clinical risk factors into a diabetes risk
estimate averaged across seven algorithm profiles, and compares the
reference performance of those algorithms.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAssessCmd(),
		newAlgorithmsCmd(),
		newFeaturesCmd(),
		newParamsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
