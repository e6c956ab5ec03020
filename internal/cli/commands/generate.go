package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnny-wiley/system-log-parser/pkg/aggregator"
	"github.com/johnny-wiley/system-log-parser/pkg/config"
	"github.com/johnny-wiley/system-log-parser/pkg/parser"
	"github.com/johnny-wiley/system-log-parser/pkg/report"
)

// GenerateOptions holds command-line options for the generate command.
type GenerateOptions struct {
	Format string
	Output string
	Levels []string
	Config string
	Quiet  bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:     "generate <log-file>",
		Aliases: []string{"gen"},
		Short:   "Generate a summary report from a log file",
		Long: `Parse a log file and write a per-message summary report.

The summary table lists each distinct message with its occurrence count and
first/last-seen timestamps, most frequent first. The xlsx format adds an
Overview sheet with run-level metrics; the csv format writes the summary
table only.

Exit codes:
  0 - Report written, or no matching entries found
  2 - Input or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (xlsx|csv)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file path (default: derived from the input file)")
	cmd.Flags().StringSliceVar(&opts.Levels, "levels", nil, "Log levels to include (can be repeated)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Optional YAML config file")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress the console overview")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *GenerateOptions) error {
	logPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, opts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(logPath); err != nil {
		return fmt.Errorf("input file not found: %s", logPath)
	}

	source := parser.NewFileSource(logPath)
	defer source.Close()

	session := aggregator.NewSession(cfg.Levels)
	if err := session.Consume(ctx, source); err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}

	result, err := session.Finalize()
	if errors.Is(err, aggregator.ErrNoEntries) {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching log entries found with the given levels/patterns.")
		return nil
	}
	if err != nil {
		return err
	}

	writer, err := createWriter(cfg.Format)
	if err != nil {
		return err
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = defaultOutputPath(logPath, cfg.Format)
	}

	if err := writer.Write(ctx, result, outPath); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Report saved to: %s\n", outPath)
	if !opts.Quiet {
		printOverview(out, result.Overview)
	}

	return nil
}

// resolveConfig layers the optional config file over the defaults, then
// applies CLI flag overrides.
func resolveConfig(ctx context.Context, opts *GenerateOptions) (*config.Config, error) {
	cfg := config.FromEnvironment()

	if opts.Config != "" {
		loaded, err := config.Load(ctx, opts.Config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if len(opts.Levels) > 0 {
		cfg.Levels = opts.Levels
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func createWriter(format string) (report.Writer, error) {
	switch format {
	case config.FormatXLSX:
		return report.NewXLSXWriter(), nil
	case config.FormatCSV:
		return report.NewCSVWriter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use xlsx or csv)", format)
	}
}

// defaultOutputPath places the report next to the input file.
func defaultOutputPath(logPath, format string) string {
	base := strings.TrimSuffix(filepath.Base(logPath), filepath.Ext(logPath))
	return filepath.Join(filepath.Dir(logPath), base+"_report."+format)
}

// printOverview mirrors the Overview sheet on the console.
func printOverview(w io.Writer, o aggregator.Overview) {
	fmt.Fprintln(w, "\nOverview:")
	fmt.Fprintf(w, "- Total lines: %d\n", o.TotalLines)
	fmt.Fprintf(w, "- Matched entries: %d\n", o.MatchedEntries)
	fmt.Fprintf(w, "- Unique messages: %d\n", o.UniqueMessages)
	fmt.Fprintf(w, "- Time range start: %s\n", report.FormatTime(o.RangeStart))
	fmt.Fprintf(w, "- Time range end: %s\n", report.FormatTime(o.RangeEnd))
	fmt.Fprintf(w, "- Levels included: %s\n", strings.Join(o.Levels, ", "))
}
