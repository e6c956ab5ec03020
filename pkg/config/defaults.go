package config

import (
	"os"
	"strings"
)

// Supported report formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Environment variable names.
const (
	EnvLevels = "LOGREPORT_LEVELS"
	EnvFormat = "LOGREPORT_FORMAT"
)

// DefaultLevels returns the log levels included when none are configured.
func DefaultLevels() []string {
	return []string{"ERROR", "WARNING", "INFO"}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Levels: DefaultLevels(),
		Format: FormatXLSX,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if levels := os.Getenv(EnvLevels); levels != "" {
		c.Levels = splitList(levels)
	}
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = format
	}
}

// splitList splits a comma-separated list, dropping blank items.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
