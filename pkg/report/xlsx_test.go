package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestXLSXWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	w := NewXLSXWriter()
	if w.Name() != "xlsx" {
		t.Errorf("Name() = %q, want xlsx", w.Name())
	}

	if err := w.Write(context.Background(), sampleResult(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reading back workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" || sheets[1] != "Overview" {
		t.Errorf("Sheets = %v, want [Summary Overview]", sheets)
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("GetRows(Summary) error = %v", err)
	}
	if len(summary) != 3 {
		t.Fatalf("Summary has %d rows, want 3", len(summary))
	}
	wantHeader := []string{"Message", "Count", "First Seen", "Last Seen"}
	for j, col := range wantHeader {
		if summary[0][j] != col {
			t.Errorf("Summary header[%d] = %q, want %q", j, summary[0][j], col)
		}
	}
	if summary[1][0] != "Disk full" || summary[1][1] != "2" {
		t.Errorf("Summary row 1 = %v", summary[1])
	}
	if summary[2][2] != "N/A" || summary[2][3] != "N/A" {
		t.Errorf("Summary row 2 = %v, want N/A timestamps", summary[2])
	}

	overview, err := f.GetRows("Overview")
	if err != nil {
		t.Fatalf("GetRows(Overview) error = %v", err)
	}
	if len(overview) != 7 {
		t.Fatalf("Overview has %d rows, want 7", len(overview))
	}

	metrics := make(map[string]string)
	for _, row := range overview[1:] {
		if len(row) == 2 {
			metrics[row[0]] = row[1]
		}
	}
	if metrics["Total lines"] != "5" {
		t.Errorf("Total lines = %q, want 5", metrics["Total lines"])
	}
	if metrics["Matched entries"] != "3" {
		t.Errorf("Matched entries = %q, want 3", metrics["Matched entries"])
	}
	if metrics["Unique messages"] != "2" {
		t.Errorf("Unique messages = %q, want 2", metrics["Unique messages"])
	}
	if metrics["Time range start"] != "2025-08-14 10:00:00" {
		t.Errorf("Time range start = %q", metrics["Time range start"])
	}
	if metrics["Time range end"] != "2025-08-14 10:05:00" {
		t.Errorf("Time range end = %q", metrics["Time range end"])
	}
	if metrics["Levels included"] != "ERROR, WARNING" {
		t.Errorf("Levels included = %q", metrics["Levels included"])
	}
}

func TestXLSXWriter_BadPath(t *testing.T) {
	w := NewXLSXWriter()
	err := w.Write(context.Background(), sampleResult(), "/nonexistent/dir/report.xlsx")
	if err == nil {
		t.Error("Write() expected error for unwritable path")
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(sampleResult().Overview.RangeStart); got != "2025-08-14 10:00:00" {
		t.Errorf("FormatTime = %q", got)
	}
	var zero = sampleResult().Table[1].FirstSeen
	if got := FormatTime(zero); got != "N/A" {
		t.Errorf("FormatTime(zero) = %q, want N/A", got)
	}
}
