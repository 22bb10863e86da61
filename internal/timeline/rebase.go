package timeline

import (
	"time"

	"github.com/Thecityismine/project-ganttflow/internal/model"
	"github.com/Thecityismine/project-ganttflow/internal/util"
)

// RebaseProjectStart applies a project start-date edit to the whole schedule.
// The input project is not mutated; the transform runs on a deep copy.
//
// The anchor is the start of the very first task of the first phase when
// parseable, else the earliest task start in the project, else the old
// project start. Every task date moves by newStart - anchor whole days, a
// task shifted to before the new start is re-clamped onto it keeping its
// duration, and the project end is reconciled to the latest task end.
//
// There is no failure mode: malformed dates degrade field by field. When the
// new start itself does not parse only the start-date field is replaced.
func RebaseProjectStart(p model.Project, newStart string) model.Project {
	out := p.Clone()

	oldStart, okOld := util.ParseDate(out.StartDate)
	next, okNext := util.ParseDate(newStart)
	anchor, okAnchor := rebaseAnchor(out, oldStart, okOld)

	out.StartDate = newStart
	if !okNext || !okAnchor {
		return out
	}

	dayShift := util.DaysBetween(anchor, next)

	if dayShift == 0 {
		// Re-confirming the same effective start: pull legacy tasks that
		// begin before the project start forward onto it, keeping duration.
		normalizeLegacyStarts(&out, next)
	}

	if end, ok := util.ParseDate(out.EndDate); ok && dayShift != 0 {
		out.EndDate = util.FormatDate(util.AddDays(end, dayShift))
	}

	for pi := range out.Phases {
		for ti := range out.Phases[pi].Tasks {
			task := &out.Phases[pi].Tasks[ti]

			// Start and end shift independently: a task missing one of the
			// two only has the present one moved.
			if s, ok := util.ParseDate(task.StartDate); ok && dayShift != 0 {
				task.StartDate = util.FormatDate(util.AddDays(s, dayShift))
			}
			if e, ok := util.ParseDate(task.EndDate); ok && dayShift != 0 {
				task.EndDate = util.FormatDate(util.AddDays(e, dayShift))
			}

			clampTaskToStart(task, next)
		}
	}

	// Keep the project end aligned with the shifted tasks.
	if maxEnd, ok := latestTaskEnd(out); ok {
		out.EndDate = util.FormatDate(maxEnd)
	}
	return out
}

func rebaseAnchor(p model.Project, oldStart time.Time, haveOldStart bool) (time.Time, bool) {
	if len(p.Phases) > 0 && len(p.Phases[0].Tasks) > 0 {
		if t, ok := util.ParseDate(p.Phases[0].Tasks[0].StartDate); ok {
			return t, true
		}
	}
	earliest, found := time.Time{}, false
	for _, ph := range p.Phases {
		for _, task := range ph.Tasks {
			t, ok := util.ParseDate(task.StartDate)
			if !ok {
				continue
			}
			if !found || t.Before(earliest) {
				earliest = t
				found = true
			}
		}
	}
	if found {
		return earliest, true
	}
	if haveOldStart {
		return oldStart, true
	}
	return time.Time{}, false
}

func normalizeLegacyStarts(p *model.Project, next time.Time) {
	for pi := range p.Phases {
		for ti := range p.Phases[pi].Tasks {
			task := &p.Phases[pi].Tasks[ti]
			s, ok := util.ParseDate(task.StartDate)
			if !ok || !s.Before(next) {
				continue
			}
			e, hasEnd := util.ParseDate(task.EndDate)
			duration := 0
			if hasEnd {
				if d := util.DaysBetween(s, e); d > 0 {
					duration = d
				}
			}
			task.StartDate = util.FormatDate(next)
			if hasEnd {
				task.EndDate = util.FormatDate(util.AddDays(next, duration))
			}
		}
	}
}

// clampTaskToStart pulls a task whose (already shifted) start precedes the
// new project start onto it, preserving duration when an end exists.
func clampTaskToStart(task *model.Task, next time.Time) {
	s, ok := util.ParseDate(task.StartDate)
	if !ok || !s.Before(next) {
		return
	}
	e, hasEnd := util.ParseDate(task.EndDate)
	duration := 0
	if hasEnd {
		if d := util.DaysBetween(s, e); d > 0 {
			duration = d
		}
	}
	task.StartDate = util.FormatDate(next)
	if hasEnd {
		task.EndDate = util.FormatDate(util.AddDays(next, duration))
	}
}

func latestTaskEnd(p model.Project) (time.Time, bool) {
	var max time.Time
	found := false
	for _, ph := range p.Phases {
		for _, task := range ph.Tasks {
			e, ok := util.ParseDate(task.EndDate)
			if !ok {
				continue
			}
			if !found || e.After(max) {
				max = e
				found = true
			}
		}
	}
	return max, found
}
