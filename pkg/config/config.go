package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the default configuration with environment
// variable overrides applied, for runs without a config file.
func FromEnvironment() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	return cfg
}

// Validate checks a configuration for errors and normalizes level names
// to uppercase in place.
func Validate(cfg *Config) error {
	if len(cfg.Levels) == 0 {
		return errors.New("levels: at least one log level is required")
	}

	for i, level := range cfg.Levels {
		level = strings.TrimSpace(level)
		if level == "" {
			return fmt.Errorf("levels[%d]: level must not be blank", i)
		}
		cfg.Levels[i] = strings.ToUpper(level)
	}

	switch cfg.Format {
	case FormatXLSX, FormatCSV:
	default:
		return fmt.Errorf("format: invalid format %q (must be xlsx or csv)", cfg.Format)
	}

	return nil
}
