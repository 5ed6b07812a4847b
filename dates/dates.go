// Package dates formats the API's timestamps for display in the sr-RS style
// ("2. 1. 2006. 15:04:05").
package dates

import (
	"strings"
	"time"
)

// NotAvailable is shown for missing or unparsable timestamps.
const NotAvailable = "N/A"

const (
	longLayout  = "2. 1. 2006. 15:04:05"
	shortLayout = "2. 1. 2006."
)

// The server emits naive ISO-8601 (Python isoformat) and sometimes RFC 3339.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Parse reads an API timestamp. Naive timestamps are read in loc.
func Parse(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate returns date and time, or NotAvailable.
func FormatDate(s string) string {
	return format(s, longLayout)
}

// FormatDateShort returns the date only, or NotAvailable.
func FormatDateShort(s string) string {
	return format(s, shortLayout)
}

// FormatDatePtr is FormatDate for optional fields.
func FormatDatePtr(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return FormatDate(*s)
}

func format(s, layout string) string {
	t, ok := Parse(s, time.Local)
	if !ok {
		return NotAvailable
	}
	return t.In(time.Local).Format(layout)
}
