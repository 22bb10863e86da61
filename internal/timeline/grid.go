// Package timeline is the layout engine behind the schedule chart: it turns
// a project's date range into a week-bucketed calendar grid, maps task date
// ranges onto grid columns, and propagates start-date edits across the
// schedule. Everything here is pure; callers own state replacement.
package timeline

import (
	"fmt"
	"time"

	"github.com/Thecityismine/project-ganttflow/internal/util"
)

// WeeksPerMonth is fixed: every month bucket holds exactly 4 Monday-anchored
// weeks (28 days), so the grid may extend past the true end date but never
// produces partial months.
const WeeksPerMonth = 4

// Week is one grid column: a 7-day span labelled W1..W4.
type Week struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Month is one header bucket of exactly WeeksPerMonth weeks.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Weeks []Week     `json:"weeks"`
}

// MondayBefore returns the Monday on or before d.
func MondayBefore(d time.Time) time.Time {
	return util.AddDays(d, -((int(d.Weekday()) - 1 + 7) % 7))
}

func monthBucket(year int, month time.Month) Month {
	w1 := MondayBefore(time.Date(year, month, 1, 0, 0, 0, 0, time.Local))
	weeks := make([]Week, WeeksPerMonth)
	for i := range weeks {
		ws := util.AddDays(w1, i*7)
		weeks[i] = Week{
			Label: fmt.Sprintf("W%d", i+1),
			Start: ws,
			End:   util.AddDays(ws, 6),
		}
	}
	return Month{Year: year, Month: month, Weeks: weeks}
}

// BuildTimeline converts a date range into month buckets. It starts at the
// first day of the month containing start and emits months while the month's
// first day is on or before end. Any parse failure yields an empty grid.
func BuildTimeline(startStr, endStr string) []Month {
	start, okS := util.ParseDate(startStr)
	end, okE := util.ParseDate(endStr)
	if !okS || !okE {
		return nil
	}

	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.Local)
	var months []Month
	for !cur.After(end) {
		months = append(months, monthBucket(cur.Year(), cur.Month()))
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// TotalColumns counts the flattened week columns of a grid.
func TotalColumns(months []Month) int {
	n := 0
	for _, m := range months {
		n += len(m.Weeks)
	}
	return n
}

// EnsureMinimumColumns pads a non-empty grid with synthetic trailing months
// until it holds at least min columns. Padding months carry no tasks; they
// only widen short charts to a consistent canvas. Idempotent.
func EnsureMinimumColumns(months []Month, min int) []Month {
	if len(months) == 0 {
		return months
	}
	total := TotalColumns(months)
	last := months[len(months)-1]
	cursor := time.Date(last.Year, last.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	for total < min {
		months = append(months, monthBucket(cursor.Year(), cursor.Month()))
		total += WeeksPerMonth
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months
}
