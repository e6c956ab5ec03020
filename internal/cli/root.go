// Package cli provides the command-line interface for logreport.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnny-wiley/system-log-parser/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Input or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logreport",
		Short: "Summarize log files into spreadsheet reports",
		Long: `logreport is a batch log analysis tool that extracts timestamped events
from plain-text log files and summarizes them by message.

It recognizes two common line shapes:
  [2025-08-14 10:22:45] ERROR: Something happened
  2025-08-14 10:22:45,123 ERROR Something happened

Each matched line contributes to the occurrence count and first/last-seen
span of its message text. The report is written as a two-sheet .xlsx
workbook (Summary + Overview) or a flat .csv table. Lines matching neither
shape are skipped, never fatal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
