// Package parser provides log line matching, timestamp normalization, and
// file reading functionality.
package parser

import "time"

// Match holds the raw components extracted from a single log line, each
// trimmed of surrounding whitespace. The timestamp text has not yet been
// normalized into a time.Time.
type Match struct {
	// Timestamp is the raw timestamp text captured from the line.
	Timestamp string

	// Level is the severity token, e.g. ERROR or WARNING.
	Level string

	// Message is the remaining message text.
	Message string
}

// Record is a fully parsed log event ready for aggregation.
type Record struct {
	// Timestamp is the normalized event time. The zero value means the
	// timestamp text fit no known format.
	Timestamp time.Time

	// Level is the uppercased severity token.
	Level string

	// Message is the message text, the grouping key for aggregation.
	Message string
}

// Line is a raw log line read from a file.
type Line struct {
	// Content is the line text with the trailing newline stripped.
	Content string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}
