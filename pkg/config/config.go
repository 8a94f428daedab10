// Package config handles loading and managing Riskscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/riskscope/riskscope/pkg/factors"
)

// Config is the top-level configuration for Riskscope.
type Config struct {
	Scoring  ScoringConfig      `yaml:"scoring"`
	Defaults map[string]float64 `yaml:"defaults"`
	Output   OutputConfig       `yaml:"output"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	Weights map[string]float64 `yaml:"weights"`
	// Seed fixes the noise seed when the command line does not give one.
	Seed *uint64 `yaml:"seed"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, markdown
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights: map[string]float64{},
		},
		Defaults: map[string]float64{},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// BaseFactors returns the default risk factors with the configured
// overrides applied. Keys are parameter keys; camelCase aliases work too.
func (c *Config) BaseFactors() (factors.RiskFactors, error) {
	f := factors.Defaults()

	// Sorted so the first bad key reported is stable.
	keys := make([]string, 0, len(c.Defaults))
	for k := range c.Defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var err error
		if f, err = f.With(k, c.Defaults[k]); err != nil {
			return f, fmt.Errorf("config defaults: %w", err)
		}
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("config defaults: %w", err)
	}
	return f, nil
}

// FindConfigFile looks for .riskscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".riskscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the cache directory for a given working directory.
// Uses ~/.cache/riskscope/<slug>/ to avoid polluting the project.
func CacheDir(workDir string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	slug := dirSlug(workDir)
	return filepath.Join(home, ".cache", "riskscope", slug)
}

// AssessmentDir returns the directory saved assessments are written to.
func AssessmentDir(workDir string) string {
	return filepath.Join(CacheDir(workDir), "assessments")
}

// dirSlug creates a filesystem-safe identifier from a directory path.
// Uses the last two path components (e.g., "user_project" from "/home/user/project").
func dirSlug(workDir string) string {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		abs = workDir
	}
	dir := filepath.Base(filepath.Dir(abs))
	base := filepath.Base(abs)
	return dir + "_" + base
}
