package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskscope/riskscope/pkg/config"
	"github.com/riskscope/riskscope/pkg/factors"
	"github.com/riskscope/riskscope/pkg/noise"
	"github.com/riskscope/riskscope/pkg/scoring"
	"github.com/riskscope/riskscope/pkg/surface"
)

// flagName maps a parameter key to its command-line flag.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func newAssessCmd() *cobra.Command {
	var (
		inputPath string
		seed      uint64
		noNoise   bool
		snap      bool
		outputFmt string
		save      bool
		values    = make(map[string]*float64)
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score risk factors into a diabetes risk estimate",
		Long: `Scores the eight risk factors and averages the predictions of seven
algorithm profiles. Unset factors take their defaults, overridden by the
config file and then by --input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir()
			if err != nil {
				return err
			}

			opts := assessOpts{
				dir:       dir,
				inputPath: inputPath,
				noNoise:   noNoise,
				snap:      snap,
				outputFmt: outputFmt,
				save:      save,
				overrides: make(map[string]float64),
				out:       cmd.OutOrStdout(),
				errOut:    cmd.ErrOrStderr(),
			}
			if cmd.Flags().Changed("seed") {
				opts.seed = &seed
			}
			for key, v := range values {
				if cmd.Flags().Changed(flagName(key)) {
					opts.overrides[key] = *v
				}
			}
			return runAssess(cmd.Context(), opts)
		},
	}

	for _, p := range factors.Params() {
		help := fmt.Sprintf("%s (%g-%g", p.Label, p.Min, p.Max)
		if p.Unit != "" {
			help += " " + p.Unit
		}
		help += ")"
		values[p.Key] = cmd.Flags().Float64(flagName(p.Key), 0, help)
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "JSON file with factor values (partial records allowed)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Noise seed (default: from config, else time-derived)")
	cmd.Flags().BoolVar(&noNoise, "no-noise", false, "Disable per-algorithm noise")
	cmd.Flags().BoolVar(&snap, "snap", false, "Clamp values into range and round to slider steps instead of rejecting them")
	cmd.Flags().StringVar(&outputFmt, "output", "", "Output format: text, json or markdown (default: from config, else text)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the assessment JSON to the local cache")

	return cmd
}

type assessOpts struct {
	dir       string
	inputPath string
	overrides map[string]float64
	seed      *uint64
	noNoise   bool
	snap      bool
	outputFmt string
	save      bool
	out       io.Writer
	errOut    io.Writer
}

func runAssess(ctx context.Context, opts assessOpts) error {
	cfg := loadConfig(opts.dir)

	f, err := resolveFactors(cfg, opts)
	if err != nil {
		return err
	}

	fs, err := scoring.FactorsFromConfig(cfg.Scoring.Weights)
	if err != nil {
		return fmt.Errorf("config weights: %w", err)
	}
	engine := scoring.NewEngine(fs...)

	// seed stays nil when noise is disabled.
	var src noise.Source = noise.Zero{}
	var seed *uint64
	if !opts.noNoise {
		var s uint64
		switch {
		case opts.seed != nil:
			s = *opts.seed
		case cfg.Scoring.Seed != nil:
			s = *cfg.Scoring.Seed
		default:
			s = noise.NewSeed()
			fmt.Fprintf(opts.errOut, "Seed: %d\n", s)
		}
		seed = &s
		src = noise.NewSeeded(s)
	}

	result, err := engine.Compute(f, src)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if opts.save {
		path, err := saveAssessment(opts.dir, seed, result)
		if err != nil {
			fmt.Fprintf(opts.errOut, "Warning: failed to save assessment: %v\n", err)
		} else {
			fmt.Fprintf(opts.errOut, "Assessment saved: %s\n", path)
		}
	}

	renderer, err := surface.ForFormat(firstNonEmpty(opts.outputFmt, cfg.Output.Format, "text"))
	if err != nil {
		return err
	}
	if err := renderer.Render(opts.out, result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// resolveFactors layers defaults, config overrides, the input file and
// flag values, in that order.
func resolveFactors(cfg *config.Config, opts assessOpts) (factors.RiskFactors, error) {
	f, err := cfg.BaseFactors()
	if err != nil {
		return f, err
	}

	if opts.inputPath != "" {
		if f, err = factors.Load(opts.inputPath, f); err != nil {
			return f, err
		}
	}

	for key, v := range opts.overrides {
		if f, err = f.With(key, v); err != nil {
			return f, err
		}
	}

	// Snap the merged record so file values land on slider steps too.
	if opts.snap {
		for _, p := range factors.Params() {
			if f, err = f.With(p.Key, p.Snap(p.Get(f))); err != nil {
				return f, err
			}
		}
	}

	return f, f.Validate()
}

// saveAssessment writes the assessment to the local assessment directory.
// A nil seed marks a noise-free run; it is recorded as "noise": false with
// no seed, since no seed reproduces it.
func saveAssessment(dir string, seed *uint64, result *scoring.Assessment) (string, error) {
	assessDir := config.AssessmentDir(dir)
	if err := os.MkdirAll(assessDir, 0o755); err != nil {
		return "", fmt.Errorf("create assessment dir: %w", err)
	}

	now := time.Now().UTC()
	wrapped := struct {
		*scoring.Assessment
		Seed       *uint64 `json:"seed,omitempty"`
		Noise      bool    `json:"noise"`
		AssessedAt string  `json:"assessed_at"`
	}{
		Assessment: result,
		Seed:       seed,
		Noise:      seed != nil,
		AssessedAt: now.Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(wrapped, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal assessment: %w", err)
	}

	suffix := "nonoise"
	if seed != nil {
		suffix = strconv.FormatUint(*seed, 10)
	}
	path := filepath.Join(assessDir, fmt.Sprintf("%s_%s.json", now.Format("20060102T150405"), suffix))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
