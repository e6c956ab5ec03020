package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/johnny-wiley/system-log-parser/pkg/aggregator"
)

// TimeLayout is how timestamps appear in reports.
const TimeLayout = "2006-01-02 15:04:05"

// missingValue stands in for timestamps that never parsed.
const missingValue = "N/A"

// summaryHeader is the column order of the Summary table.
var summaryHeader = []string{"Message", "Count", "First Seen", "Last Seen"}

// FormatTime renders a timestamp for a report cell, or N/A when absent.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return missingValue
	}
	return t.Format(TimeLayout)
}

// summaryRow renders one MessageStat as report cells.
func summaryRow(stat *aggregator.MessageStat) []string {
	return []string{
		stat.Message,
		strconv.Itoa(stat.Count),
		FormatTime(stat.FirstSeen),
		FormatTime(stat.LastSeen),
	}
}

// overviewRows flattens the overview into Metric/Value pairs in report order.
func overviewRows(o aggregator.Overview) [][]string {
	return [][]string{
		{"Total lines", strconv.Itoa(o.TotalLines)},
		{"Matched entries", strconv.Itoa(o.MatchedEntries)},
		{"Unique messages", strconv.Itoa(o.UniqueMessages)},
		{"Time range start", FormatTime(o.RangeStart)},
		{"Time range end", FormatTime(o.RangeEnd)},
		{"Levels included", strings.Join(o.Levels, ", ")},
	}
}
