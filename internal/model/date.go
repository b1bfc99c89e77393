package model

import (
	"strings"
	"time"
)

// CalendarLayout renders a date without time of day, e.g. "Mon Jan 15 2024".
const CalendarLayout = "Mon Jan 02 2006"

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006-1-2",
	CalendarLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
	"2006/1/2",
}

// ParseDate parses a caller-supplied date. Values without a zone are read as UTC.
// ok is false for empty or unparseable input; callers fall back instead of failing.
func ParseDate(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed.UTC(), true
		}
	}

	return time.Time{}, false
}

// CalendarString renders t as a UTC calendar day.
func CalendarString(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}
