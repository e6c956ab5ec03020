package parser

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order when normalizing timestamp text.
// The fractional-second layouts accept a variable number of digits.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05,999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
}

// ParseTimestamp normalizes timestamp text against the known layouts in
// order, returning the first full-string parse. If every layout fails and
// the text contains a comma, everything from the first comma onward is
// dropped and the remainder is retried; this tolerates odd fractional-second
// suffixes. The boolean is false when nothing parses - never an error.
func ParseTimestamp(text string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts, true
		}
	}

	if i := strings.IndexByte(text, ','); i >= 0 {
		if ts, err := time.Parse(timestampLayouts[0], text[:i]); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}
