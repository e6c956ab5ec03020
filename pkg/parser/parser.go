package parser

import (
	"regexp"
	"strings"
)

// Line shapes tried in order; the first match wins.
var strategies = []*regexp.Regexp{
	// Bracketed form: "[2025-08-14 10:22:45] ERROR: Message text"
	regexp.MustCompile(`^\[(.+?)\]\s*([A-Z]+)\s*:\s*(.*)$`),

	// Space-delimited form: "2025-08-14 10:22:45,123 ERROR Message text"
	regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(?:[,.]\d{1,6})?)\s+([A-Z]+)\s+(.*)$`),
}

// ParseLine applies each line shape in order and returns the captures of the
// first one that matches. The boolean is false when no shape matches; callers
// skip such lines rather than treating them as errors.
func ParseLine(raw string) (Match, bool) {
	line := strings.TrimSuffix(raw, "\n")

	for _, re := range strategies {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return Match{
			Timestamp: strings.TrimSpace(m[1]),
			Level:     strings.TrimSpace(m[2]),
			Message:   strings.TrimSpace(m[3]),
		}, true
	}

	return Match{}, false
}
