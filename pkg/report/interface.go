// Package report renders aggregated log statistics as spreadsheet or
// delimited flat files.
package report

import (
	"context"

	"github.com/johnny-wiley/system-log-parser/pkg/aggregator"
)

// Writer renders a finalized aggregation result to a destination path.
type Writer interface {
	// Name returns the format name.
	Name() string

	// Write renders the result to the given path.
	Write(ctx context.Context, result *aggregator.Result, path string) error
}
