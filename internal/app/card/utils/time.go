package utils

import (
	"strings"
	"time"
)

// releaseDateLayouts are tried in order; date-only values are midnight UTC.
var releaseDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseReleaseDate parses an RFC3339 timestamp or a bare YYYY-MM-DD date
// into UTC. ok is false for empty or unparsable input.
func ParseReleaseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseDateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
