// Package config loads optional on-disk defaults for the baa-lexer and
// baa-ast CLI tools: which demo source to tokenize/parse when no file is
// given, and whether baa-ast colorizes its diagnostics. Absent a
// config file, each tool falls back to its own built-in default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a tool's YAML config file.
type Config struct {
	// DemoSource overrides the built-in demo snippet tokenized/parsed
	// when a tool is invoked with no file argument.
	DemoSource string `yaml:"demo_source"`
	// Color, when non-nil, forces diagnostic output color on or off
	// regardless of terminal detection.
	Color *bool `yaml:"color"`
}

// Load reads and parses a YAML config file at path. A missing file is
// not an error: Load returns a zero Config so callers can apply their
// own defaults uniformly.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// DemoSourceOr returns cfg.DemoSource if set, otherwise fallback.
func (c Config) DemoSourceOr(fallback string) string {
	if c.DemoSource != "" {
		return c.DemoSource
	}
	return fallback
}

// ColorEnabled reports whether color output should be used, given the
// terminal's own auto-detected default.
func (c Config) ColorEnabled(autoDetected bool) bool {
	if c.Color != nil {
		return *c.Color
	}
	return autoDetected
}
