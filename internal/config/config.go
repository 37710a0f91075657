package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace marker file written by init.
const FileName = "moneytrail.yaml"

// Config represents the top-level moneytrail.yaml configuration. Display
// options (currency, theme, notifications) live in the settings
// collection, not here; this file only identifies the workspace and
// tunes capture behavior.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Capture CaptureConfig `yaml:"capture"`
	Budgets BudgetsConfig `yaml:"budgets"`
}

// ProfileConfig identifies the workspace owner.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// CaptureConfig controls SMS/import capture behavior.
type CaptureConfig struct {
	WarnDuplicates bool `yaml:"warn_duplicates"`
}

// BudgetsConfig controls budget creation defaults.
type BudgetsConfig struct {
	DefaultLimit int64 `yaml:"default_limit"`
}

// Load reads a moneytrail.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{Name: profileName},
		Capture: CaptureConfig{WarnDuplicates: true},
		Budgets: BudgetsConfig{DefaultLimit: 5000},
	}
}
