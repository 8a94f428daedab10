package factors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes a factors record to disk as JSON.
func Save(path string, f RiskFactors) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for factors: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling factors: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing factors: %w", err)
	}

	return nil
}

// Load reads a factors record from disk. Fields missing from the file keep
// the values of base, so a partial file overrides only what it names.
// The result is validated.
func Load(path string, base RiskFactors) (RiskFactors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading factors: %w", err)
	}

	f := base
	if err := json.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("unmarshaling factors: %w", err)
	}

	if err := f.Validate(); err != nil {
		return base, err
	}
	return f, nil
}
