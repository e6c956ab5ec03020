package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/johnny-wiley/system-log-parser/pkg/aggregator"
)

// Sheet names in the workbook.
const (
	summarySheet  = "Summary"
	overviewSheet = "Overview"
)

// XLSXWriter writes a two-sheet workbook: the Summary table plus an
// Overview sheet of run-level metrics.
type XLSXWriter struct{}

// NewXLSXWriter creates a new spreadsheet report writer.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// Name returns the format name.
func (w *XLSXWriter) Name() string {
	return "xlsx"
}

// Write renders the workbook to path.
func (w *XLSXWriter) Write(ctx context.Context, result *aggregator.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}

	if err := setRow(f, summarySheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, stat := range result.Table {
		row := []interface{}{stat.Message, stat.Count, FormatTime(stat.FirstSeen), FormatTime(stat.LastSeen)}
		if err := setRawRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(overviewSheet); err != nil {
		return fmt.Errorf("creating overview sheet: %w", err)
	}
	if err := setRow(f, overviewSheet, 1, []string{"Metric", "Value"}); err != nil {
		return err
	}
	for i, row := range overviewRows(result.Overview) {
		if err := setRow(f, overviewSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return setRawRow(f, sheet, row, cells)
}

func setRawRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing %s row %d: %w", sheet, row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
