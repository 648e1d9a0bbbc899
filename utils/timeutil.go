package utils

import "time"

const DateLayout = "2006-01-02"

// DateString formats a time as a calendar-day key (local day, no zone).
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD day.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// WeekStart returns the most recent Monday on or before t, truncated to
// the start of the day.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
