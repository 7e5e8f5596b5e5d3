// Package dates handles the plan's ISO calendar dates. Every date string in
// the document is a YYYY-MM-DD UTC calendar date; parsing in local time
// shifts dates by a day in western timezones, so all arithmetic here stays
// in UTC.
package dates

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// ParseUTC parses a YYYY-MM-DD string as midnight UTC on that day.
func ParseUTC(s string) (time.Time, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Format renders a UTC date back to YYYY-MM-DD.
func Format(t time.Time) string {
	return t.UTC().Format(isoDate)
}

// Display renders a date for terminal output, e.g. "Jan 2, 2026". Invalid
// input is returned unchanged so a malformed model date still shows up.
func Display(s string) string {
	t, err := ParseUTC(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// DisplayRange renders "start — end" for phase headers.
func DisplayRange(start, end string) string {
	return Display(start) + " — " + Display(end)
}

// AddDays returns the date n calendar days after t, in UTC.
func AddDays(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, n)
}

// DaysBetween returns the whole calendar days from a to b (negative when b
// precedes a).
func DaysBetween(a, b time.Time) int {
	return int(b.UTC().Truncate(24*time.Hour).Sub(a.UTC().Truncate(24*time.Hour)) / (24 * time.Hour))
}
