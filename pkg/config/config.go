package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles format patterns.
func Validate(cfg *Config) error {
	switch cfg.Color {
	case "", "always", "never", "auto":
	default:
		return fmt.Errorf("color: must be always, never, or auto, got %q", cfg.Color)
	}

	for i := range cfg.Formats {
		if err := validateFormat(&cfg.Formats[i]); err != nil {
			return fmt.Errorf("formats[%d] (%s): %w", i, cfg.Formats[i].Name, err)
		}
	}

	return nil
}

func validateFormat(f *FormatConfig) error {
	if f.Name == "" {
		return errors.New("name is required")
	}

	if f.Pattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile(f.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if re.NumSubexp() < 1 {
		return errors.New("pattern must have at least one capture group for the timestamp")
	}

	f.compiledPattern = re

	return nil
}
