// Package aggregator groups matched log records by message text and derives
// per-message and overall summary statistics in a single pass.
package aggregator

import "time"

// MessageStat accumulates statistics for one distinct message text.
// Message text alone is the grouping key; records with different levels but
// identical message text share one MessageStat.
type MessageStat struct {
	// Message is the exact message text.
	Message string

	// Count is the number of allowed-level records with this message.
	Count int

	// FirstSeen is the earliest parsed timestamp among those records.
	// The zero value means no record carried a parseable timestamp.
	FirstSeen time.Time

	// LastSeen is the latest parsed timestamp among those records.
	LastSeen time.Time
}

// observe folds one record's timestamp into the seen range.
// A zero timestamp (unparseable text) leaves the range untouched.
func (s *MessageStat) observe(ts time.Time) {
	if ts.IsZero() {
		return
	}
	if s.FirstSeen.IsZero() || ts.Before(s.FirstSeen) {
		s.FirstSeen = ts
	}
	if s.LastSeen.IsZero() || ts.After(s.LastSeen) {
		s.LastSeen = ts
	}
}

// Overview provides aggregate statistics for one full pass.
type Overview struct {
	// TotalLines is the number of input lines read, matched or not.
	TotalLines int

	// MatchedEntries is the number of lines that parsed and passed the
	// level filter.
	MatchedEntries int

	// UniqueMessages is the number of distinct message texts.
	UniqueMessages int

	// RangeStart is the earliest parsed timestamp across all messages.
	// Zero when no timestamp parsed.
	RangeStart time.Time

	// RangeEnd is the latest parsed timestamp across all messages.
	RangeEnd time.Time

	// Levels lists the allowed levels, uppercased and sorted.
	Levels []string
}

// Result is the finalized output of one aggregation pass.
type Result struct {
	// Table holds one entry per distinct message, sorted by count
	// descending, then last-seen descending.
	Table []*MessageStat

	// Overview provides the run-level metrics.
	Overview Overview
}
