package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thecityismine/project-ganttflow/internal/model"
)

func scheduleProject(start, end string, phases ...model.Phase) model.Project {
	return model.Project{
		ID:        "p1",
		Name:      "Test",
		Status:    model.StatusInProgress,
		StartDate: start,
		EndDate:   end,
		ShowToday: true,
		Phases:    phases,
	}
}

func task(id, start, end string) model.Task {
	return model.Task{ID: id, Name: id, StartDate: start, EndDate: end, Type: model.TypeWork}
}

func findTask(t *testing.T, p model.Project, id string) model.Task {
	t.Helper()
	for _, ph := range p.Phases {
		for _, tk := range ph.Tasks {
			if tk.ID == id {
				return tk
			}
		}
	}
	t.Fatalf("task %s not found", id)
	return model.Task{}
}

func TestRebaseShiftsWholeSchedule(t *testing.T) {
	// Anchor is the first task's start (2026-02-11); moving the project to
	// 2026-02-25 shifts everything forward 14 days.
	p := scheduleProject("2026-02-18", "2026-02-25",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-02-11", "2026-02-25"),
		}},
	)

	out := RebaseProjectStart(p, "2026-02-25")

	assert.Equal(t, "2026-02-25", out.StartDate)
	tk := findTask(t, out, "t1")
	assert.Equal(t, "2026-02-25", tk.StartDate)
	assert.Equal(t, "2026-03-11", tk.EndDate)
	// Project end reconciles to the latest shifted task end.
	assert.Equal(t, "2026-03-11", out.EndDate)
}

func TestRebaseDoesNotMutateInput(t *testing.T) {
	p := scheduleProject("2026-02-18", "2026-02-25",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-02-11", "2026-02-25"),
		}},
	)

	_ = RebaseProjectStart(p, "2026-02-25")

	assert.Equal(t, "2026-02-18", p.StartDate)
	assert.Equal(t, "2026-02-11", p.Phases[0].Tasks[0].StartDate)
}

func TestRebaseBackwardShift(t *testing.T) {
	p := scheduleProject("2026-03-02", "2026-04-06",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-03-02", "2026-03-16"),
			task("t2", "2026-03-16", "2026-04-06"),
		}},
	)

	out := RebaseProjectStart(p, "2026-02-23")

	// Shift is -7 days from the anchor (t1 start).
	t1 := findTask(t, out, "t1")
	assert.Equal(t, "2026-02-23", t1.StartDate)
	assert.Equal(t, "2026-03-09", t1.EndDate)
	t2 := findTask(t, out, "t2")
	assert.Equal(t, "2026-03-09", t2.StartDate)
	assert.Equal(t, "2026-03-30", t2.EndDate)
	assert.Equal(t, "2026-03-30", out.EndDate)
}

func TestRebaseClampsTasksBeforeNewStart(t *testing.T) {
	// t2 sits 10 days before the anchor; after a forward shift it still
	// starts before the new project start and gets re-clamped onto it,
	// keeping its 5-day duration.
	p := scheduleProject("2026-03-02", "2026-04-01",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-03-02", "2026-03-20"),
			task("t2", "2026-02-20", "2026-02-25"),
		}},
	)

	out := RebaseProjectStart(p, "2026-03-09")

	t2 := findTask(t, out, "t2")
	assert.Equal(t, "2026-03-09", t2.StartDate)
	assert.Equal(t, "2026-03-14", t2.EndDate)

	t1 := findTask(t, out, "t1")
	assert.Equal(t, "2026-03-09", t1.StartDate)
	assert.Equal(t, "2026-03-27", t1.EndDate)
	assert.Equal(t, "2026-03-27", out.EndDate)
}

func TestRebaseZeroShiftNormalizesLegacyDates(t *testing.T) {
	// New start equals the anchor: nothing shifts, but a legacy task dated
	// before the project start is pulled forward with its duration intact.
	p := scheduleProject("2026-03-02", "2026-04-06",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-03-02", "2026-03-16"),
			task("legacy", "2026-02-20", "2026-02-27"),
		}},
	)

	out := RebaseProjectStart(p, "2026-03-02")

	t1 := findTask(t, out, "t1")
	assert.Equal(t, "2026-03-02", t1.StartDate)
	assert.Equal(t, "2026-03-16", t1.EndDate)

	legacy := findTask(t, out, "legacy")
	assert.Equal(t, "2026-03-02", legacy.StartDate)
	assert.Equal(t, "2026-03-09", legacy.EndDate)

	// End reconciliation still runs on the zero-shift path.
	assert.Equal(t, "2026-03-16", out.EndDate)
}

func TestRebaseAnchorFallsBackToEarliestTask(t *testing.T) {
	// First task of the first phase has no parseable start; the earliest
	// start across all tasks anchors the shift instead.
	p := scheduleProject("2026-03-02", "2026-04-06",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "", "2026-03-16"),
			task("t2", "2026-03-09", "2026-03-23"),
		}},
		model.Phase{ID: "ph2", Tasks: []model.Task{
			task("t3", "2026-03-05", "2026-03-12"),
		}},
	)

	// Anchor = 2026-03-05 (earliest), shift = +7.
	out := RebaseProjectStart(p, "2026-03-12")

	t2 := findTask(t, out, "t2")
	assert.Equal(t, "2026-03-16", t2.StartDate)
	t3 := findTask(t, out, "t3")
	assert.Equal(t, "2026-03-12", t3.StartDate)

	// Start-less t1 only has its end shifted.
	t1 := findTask(t, out, "t1")
	assert.Equal(t, "", t1.StartDate)
	assert.Equal(t, "2026-03-23", t1.EndDate)
}

func TestRebaseAnchorFallsBackToOldProjectStart(t *testing.T) {
	p := scheduleProject("2026-03-02", "2026-04-06")

	out := RebaseProjectStart(p, "2026-03-09")

	assert.Equal(t, "2026-03-09", out.StartDate)
	// No tasks: the project end shifts with the schedule and no
	// reconciliation overrides it.
	assert.Equal(t, "2026-04-13", out.EndDate)
}

func TestRebaseUnparseableNewStartOnlyUpdatesField(t *testing.T) {
	p := scheduleProject("2026-03-02", "2026-04-06",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-03-02", "2026-03-16"),
		}},
	)

	out := RebaseProjectStart(p, "not-a-date")

	assert.Equal(t, "not-a-date", out.StartDate)
	assert.Equal(t, "2026-04-06", out.EndDate)
	t1 := findTask(t, out, "t1")
	assert.Equal(t, "2026-03-02", t1.StartDate)
	assert.Equal(t, "2026-03-16", t1.EndDate)
}

func TestRebaseNoAnchorLeavesScheduleAlone(t *testing.T) {
	// No task dates and no parseable old start: nothing to anchor on.
	p := scheduleProject("", "2026-04-06",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "", ""),
		}},
	)

	out := RebaseProjectStart(p, "2026-03-09")

	assert.Equal(t, "2026-03-09", out.StartDate)
	assert.Equal(t, "2026-04-06", out.EndDate)
}

func TestRebaseTaskWithoutDatesUntouched(t *testing.T) {
	p := scheduleProject("2026-03-02", "2026-04-06",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-03-02", "2026-03-16"),
			task("blank", "", ""),
		}},
	)

	out := RebaseProjectStart(p, "2026-03-09")

	blank := findTask(t, out, "blank")
	assert.Equal(t, "", blank.StartDate)
	assert.Equal(t, "", blank.EndDate)
}

func TestRebaseStartOnlyTaskClampsStartOnly(t *testing.T) {
	p := scheduleProject("2026-03-02", "2026-04-06",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-03-02", "2026-03-16"),
			task("open", "2026-02-20", ""),
		}},
	)

	out := RebaseProjectStart(p, "2026-03-09")

	open := findTask(t, out, "open")
	require.Equal(t, "2026-03-09", open.StartDate)
	assert.Equal(t, "", open.EndDate)
}
