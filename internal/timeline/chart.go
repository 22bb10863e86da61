package timeline

import (
	"math"
	"time"

	"github.com/Thecityismine/project-ganttflow/internal/model"
	"github.com/Thecityismine/project-ganttflow/internal/util"
)

// DefaultMinColumns keeps short schedules from rendering a cramped chart.
const DefaultMinColumns = 56

// TaskBar is one rendered task row.
type TaskBar struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          model.TaskType `json:"type"`
	Color         string         `json:"color"`
	DurationLabel string         `json:"durationLabel"`
	Span          *ColumnSpan    `json:"span"`
}

// PhaseBars is a phase header row plus its task rows. The phase span is
// derived from its tasks, never stored.
type PhaseBars struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Span  *ColumnSpan `json:"span"`
	Weeks int         `json:"weeks"`
	Tasks []TaskBar   `json:"tasks"`
}

// LegendEntry is one used-type swatch under the chart.
type LegendEntry struct {
	Type  model.TaskType `json:"type"`
	Label string         `json:"label"`
	Color string         `json:"color"`
}

// Chart is the complete view-model the render layer consumes. It is derived
// from project dates on every build and never persisted.
type Chart struct {
	Months       []Month       `json:"months"`
	TotalColumns int           `json:"totalColumns"`
	WeeksLong    int           `json:"weeksLong"`
	TodayColumn  *int          `json:"todayColumn"`
	Phases       []PhaseBars   `json:"phases"`
	Legend       []LegendEntry `json:"legend"`
}

// BuildChart lays out a project. The grid runs from the project start to the
// latest task date (falling back to the project end date), padded to at
// least minCols columns. now locates the today line; it is suppressed when
// the project hides it.
func BuildChart(p model.Project, minCols int, now time.Time) Chart {
	if minCols <= 0 {
		minCols = DefaultMinColumns
	}

	timelineEnd := p.EndDate
	if max, ok := latestTaskDate(p); ok {
		timelineEnd = max
	}

	months := BuildTimeline(p.StartDate, timelineEnd)
	months = EnsureMinimumColumns(months, minCols)

	chart := Chart{
		Months:       months,
		TotalColumns: TotalColumns(months),
		WeeksLong:    projectWeeks(p),
	}

	if p.ShowToday {
		if col, ok := TodayColumn(months, now); ok {
			chart.TodayColumn = &col
		}
	}

	used := map[model.TaskType]bool{}
	for _, ph := range p.Phases {
		pb := PhaseBars{ID: ph.ID, Name: ph.Name}

		phStart, phEnd := phaseSpan(ph)
		if span, ok := MapToColumns(phStart, phEnd, months); ok {
			pb.Span = &span
		}
		if s, okS := util.ParseDate(phStart); okS {
			if e, okE := util.ParseDate(phEnd); okE {
				pb.Weeks = int(math.Ceil(float64(util.DaysBetween(s, e)) / 7))
			}
		}

		for _, task := range ph.Tasks {
			typ := task.Type.Normalize()
			used[typ] = true
			tb := TaskBar{
				ID:            task.ID,
				Name:          task.Name,
				Type:          typ,
				Color:         typ.Color(),
				DurationLabel: task.DurationLabel,
			}
			if span, ok := MapToColumns(task.StartDate, task.EndDate, months); ok {
				tb.Span = &span
			}
			pb.Tasks = append(pb.Tasks, tb)
		}
		chart.Phases = append(chart.Phases, pb)
	}

	for _, typ := range model.TaskTypes() {
		if used[typ] {
			chart.Legend = append(chart.Legend, LegendEntry{
				Type: typ, Label: typ.Label(), Color: typ.Color(),
			})
		}
	}
	return chart
}

// latestTaskDate returns the lexicographic maximum over all non-empty task
// start/end strings. Wire-format dates order the same as calendar dates.
func latestTaskDate(p model.Project) (string, bool) {
	max, found := "", false
	for _, ph := range p.Phases {
		for _, task := range ph.Tasks {
			for _, d := range []string{task.StartDate, task.EndDate} {
				if d == "" {
					continue
				}
				if !found || d > max {
					max = d
					found = true
				}
			}
		}
	}
	return max, found
}

// phaseSpan derives a phase's display range: min task start, max task end.
func phaseSpan(ph model.Phase) (string, string) {
	start, end := "", ""
	for _, task := range ph.Tasks {
		if task.StartDate != "" && (start == "" || task.StartDate < start) {
			start = task.StartDate
		}
		if task.EndDate != "" && (end == "" || task.EndDate > end) {
			end = task.EndDate
		}
	}
	return start, end
}

func projectWeeks(p model.Project) int {
	s, okS := util.ParseDate(p.StartDate)
	e, okE := util.ParseDate(p.EndDate)
	if !okS || !okE {
		return 0
	}
	return int(math.Round(float64(util.DaysBetween(s, e)) / 7))
}
