package util

import (
	"math"
	"time"
)

// DateLayout is the wire format for all schedule dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar-date string in local time. A missing or
// malformed value reports ok=false; callers treat that as absent data.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date back to wire form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddWeeks shifts a date by n whole weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return AddDays(t, n*7)
}

// DaysBetween returns the signed whole-day distance from a to b, rounded so
// DST transitions cannot produce off-by-one shifts.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// TodayString returns the current local date in wire form.
func TodayString() string {
	return FormatDate(time.Now())
}
