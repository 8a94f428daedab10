package main

import (
	"fmt"
	"os"

	"github.com/riskscope/riskscope/pkg/config"
)

// loadConfig finds .riskscope/config.yaml above dir. A broken file is
// reported and replaced by the defaults.
func loadConfig(dir string) *config.Config {
	cfgFile := config.FindConfigFile(dir)
	if cfgFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func workDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return cwd, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
