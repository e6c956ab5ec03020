package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnny-wiley/system-log-parser/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logreport configuration file without generating a report.

Checks:
  - YAML syntax
  - At least one log level, none blank
  - Output format is xlsx or csv`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Levels: %s\n", strings.Join(cfg.Levels, ", "))
	fmt.Fprintf(out, "  Format: %s\n", cfg.Format)
	if cfg.Output != "" {
		fmt.Fprintf(out, "  Output: %s\n", cfg.Output)
	} else {
		fmt.Fprintf(out, "  Output: (derived from input file)\n")
	}

	return nil
}
