package timeline

import (
	"time"

	"github.com/Thecityismine/project-ganttflow/internal/util"
)

// ColumnSpan is the inclusive [Start, End] column range a date range occupies
// in the flattened grid.
type ColumnSpan struct {
	Start int `json:"startCol"`
	End   int `json:"endCol"`
}

// MapToColumns locates the week columns covering a date range. A date before
// the grid clamps to column 0, a date past the grid clamps to the last
// column, so any task with dates gets a visible bar. ok is false when either
// date fails to parse or the grid is empty. The result is never inverted.
func MapToColumns(startStr, endStr string, months []Month) (ColumnSpan, bool) {
	start, okS := util.ParseDate(startStr)
	end, okE := util.ParseDate(endStr)
	if !okS || !okE || len(months) == 0 {
		return ColumnSpan{}, false
	}

	sc, ec := -1, -1
	i := 0
	for _, m := range months {
		for _, w := range m.Weeks {
			if sc < 0 && !start.After(w.End) {
				sc = i
			}
			if ec < 0 && !end.After(w.End) {
				ec = i
			}
			i++
		}
	}
	if sc < 0 {
		sc = 0
	}
	if ec < 0 {
		ec = i - 1
	}
	if sc > ec {
		ec = sc
	}
	return ColumnSpan{Start: sc, End: ec}, true
}

// TodayColumn returns the index of the week containing now, scanning in
// chronological order. ok is false when now falls outside every week. The
// clock component of now is dropped; containment is a calendar-date check.
func TodayColumn(months []Month, now time.Time) (int, bool) {
	now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	i := 0
	for _, m := range months {
		for _, w := range m.Weeks {
			if !now.Before(w.Start) && !now.After(w.End) {
				return i, true
			}
			i++
		}
	}
	return 0, false
}
