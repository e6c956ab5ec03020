package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/johnny-wiley/system-log-parser/pkg/aggregator"
)

// CSVWriter writes the Summary table as a delimited flat file.
// The flat format has room for only one table, so the Overview is omitted.
type CSVWriter struct{}

// NewCSVWriter creates a new CSV report writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Name returns the format name.
func (w *CSVWriter) Name() string {
	return "csv"
}

// Write renders the summary table to path.
func (w *CSVWriter) Write(ctx context.Context, result *aggregator.Result, path string) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(summaryHeader); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, stat := range result.Table {
		if err := cw.Write(summaryRow(stat)); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return f.Close()
}
