package aggregator

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/johnny-wiley/system-log-parser/pkg/parser"
)

// ErrNoEntries reports that a full pass over the input matched no log
// entries with the requested levels. Callers should skip report generation
// and inform the user; this is a distinct outcome, not a failure.
var ErrNoEntries = errors.New("no log entries matched the requested levels")

// Session accumulates statistics over one pass of a log file.
// A Session is single-use: create one per run, feed it every line, then
// call Finalize exactly once.
type Session struct {
	allowed map[string]bool
	stats   map[string]*MessageStat
	order   []*MessageStat // encounter order, preserved for stable sort ties

	totalLines     int
	matchedEntries int
}

// NewSession creates a session that includes only records whose level is in
// the given set. Levels are matched case-insensitively.
func NewSession(levels []string) *Session {
	allowed := make(map[string]bool, len(levels))
	for _, level := range levels {
		allowed[strings.ToUpper(level)] = true
	}
	return &Session{
		allowed: allowed,
		stats:   make(map[string]*MessageStat),
	}
}

// Add consumes one raw log line. Lines matching no known shape and lines
// whose level is excluded are counted toward the total and otherwise
// skipped; Add never fails.
func (s *Session) Add(raw string) {
	s.totalLines++

	m, ok := parser.ParseLine(raw)
	if !ok {
		return
	}

	level := strings.ToUpper(m.Level)
	if !s.allowed[level] {
		return
	}

	// Unparseable timestamp text still counts; it just leaves the
	// record's timestamp at zero.
	ts, _ := parser.ParseTimestamp(m.Timestamp)

	s.record(parser.Record{Timestamp: ts, Level: level, Message: m.Message})
}

// record folds one allowed-level record into the per-message table.
func (s *Session) record(rec parser.Record) {
	s.matchedEntries++

	stat := s.stats[rec.Message]
	if stat == nil {
		stat = &MessageStat{Message: rec.Message}
		s.stats[rec.Message] = stat
		s.order = append(s.order, stat)
	}

	stat.Count++
	stat.observe(rec.Timestamp)
}

// Consume drains a line source into the session.
// Read errors abort the pass; io.EOF terminates it normally.
func (s *Session) Consume(ctx context.Context, source parser.LineSource) error {
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.Add(line.Content)
	}
}

// Finalize computes the sorted summary table and overview.
// Returns ErrNoEntries when the pass matched nothing.
func (s *Session) Finalize() (*Result, error) {
	if s.matchedEntries == 0 {
		return nil, ErrNoEntries
	}

	table := make([]*MessageStat, len(s.order))
	copy(table, s.order)

	// Count descending, then last-seen descending. A zero LastSeen means
	// no timestamp ever parsed and sorts as oldest. Remaining ties keep
	// encounter order.
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return table[i].LastSeen.After(table[j].LastSeen)
	})

	var start, end time.Time
	for _, stat := range table {
		if stat.FirstSeen.IsZero() {
			continue
		}
		if start.IsZero() || stat.FirstSeen.Before(start) {
			start = stat.FirstSeen
		}
		if stat.LastSeen.After(end) {
			end = stat.LastSeen
		}
	}

	levels := make([]string, 0, len(s.allowed))
	for level := range s.allowed {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	return &Result{
		Table: table,
		Overview: Overview{
			TotalLines:     s.totalLines,
			MatchedEntries: s.matchedEntries,
			UniqueMessages: len(table),
			RangeStart:     start,
			RangeEnd:       end,
			Levels:         levels,
		},
	}, nil
}
