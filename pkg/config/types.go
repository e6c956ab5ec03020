// Package config provides configuration loading and validation for logreport.
package config

// Config is the root configuration structure loaded from YAML.
// Command-line flags override these values.
type Config struct {
	// Levels are the log levels included in the report, matched
	// case-insensitively against the level token of each line.
	Levels []string `yaml:"levels"`

	// Format selects the report backend: xlsx or csv.
	Format string `yaml:"format"`

	// Output is the report destination path.
	// Empty means derive the path from the input file name.
	Output string `yaml:"output,omitempty"`
}
