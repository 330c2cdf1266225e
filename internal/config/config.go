package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level saldo.yaml configuration.
type Config struct {
	Sources   []Source `yaml:"sources"`
	RulesFile string   `yaml:"rules_file,omitempty"` // empty = embedded defaults
	Output    Output   `yaml:"output"`
}

// Source maps one statement file to the reader dialect that parses it.
type Source struct {
	Bank string `yaml:"bank"` // registry dialect name, e.g. "mbank"
	Path string `yaml:"path"`
}

// Output controls how the aggregated view is rendered.
type Output struct {
	Format string `yaml:"format"` // "csv" or "json"
}

// Load reads a saldo.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Sources: []Source{
			{Bank: "mbank", Path: "statements/mbank.csv"},
			{Bank: "pkosa", Path: "statements/pkosa.csv"},
		},
		Output: Output{Format: "csv"},
	}
}
