package core

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format accepted on input.
	DateLayout = "2006-01-02"
	// DisplayLayout renders dates the way clients show them, e.g. "Mon Jan 01 2024".
	DisplayLayout = "Mon Jan 02 2006"
)

// TimeNow is the clock used when an exercise is logged without a date.
var TimeNow = time.Now

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that day.
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return date, nil
}

// FormatDate renders a stored calendar date.
func FormatDate(date time.Time) string {
	return date.UTC().Format(DisplayLayout)
}

// CalendarDay drops the time of day, keeping the day as seen in t's location.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
