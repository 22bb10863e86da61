package timeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thecityismine/project-ganttflow/internal/model"
)

func TestBuildChartLayout(t *testing.T) {
	p := scheduleProject("2026-01-05", "2026-02-10",
		model.Phase{ID: "ph1", Name: "Design", Tasks: []model.Task{
			task("t1", "2026-01-05", "2026-01-19"),
			task("t2", "2026-01-19", "2026-02-10"),
		}},
	)

	chart := BuildChart(p, DefaultMinColumns, date("2026-01-07"))

	assert.GreaterOrEqual(t, chart.TotalColumns, DefaultMinColumns)
	require.Len(t, chart.Phases, 1)

	ph := chart.Phases[0]
	require.NotNil(t, ph.Span)
	require.Len(t, ph.Tasks, 2)
	require.NotNil(t, ph.Tasks[0].Span)

	// Phase span is derived from its tasks and covers both bars.
	assert.Equal(t, ph.Tasks[0].Span.Start, ph.Span.Start)
	assert.Equal(t, ph.Tasks[1].Span.End, ph.Span.End)

	// 2026-01-05 .. 2026-02-10 is 36 days, displayed as 6 weeks.
	assert.Equal(t, 6, ph.Weeks)

	require.NotNil(t, chart.TodayColumn)
	assert.Equal(t, 1, *chart.TodayColumn)

	// Project header week count comes from the project dates.
	assert.Equal(t, 5, chart.WeeksLong)
}

func TestBuildChartTimelineEndFollowsTasks(t *testing.T) {
	// A task running past the project end date extends the grid.
	p := scheduleProject("2026-01-05", "2026-01-20",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-01-05", "2026-06-15"),
		}},
	)

	chart := BuildChart(p, 4, date("2026-01-07"))
	require.NotEmpty(t, chart.Months)
	assert.Equal(t, 6, len(chart.Months))
}

func TestBuildChartHidesTodayLine(t *testing.T) {
	p := scheduleProject("2026-01-05", "2026-02-10",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-01-05", "2026-01-19"),
		}},
	)
	p.ShowToday = false

	chart := BuildChart(p, DefaultMinColumns, date("2026-01-07"))
	assert.Nil(t, chart.TodayColumn)
}

func TestBuildChartShowsTodayForDocumentOmittingFlag(t *testing.T) {
	// Documents persisted before the showToday field existed omit it; the
	// today line still renders for them.
	doc := `{
		"id": "p1",
		"name": "Legacy",
		"startDate": "2026-01-05",
		"endDate": "2026-02-10",
		"phases": [{"id": "ph1", "tasks": [
			{"id": "t1", "startDate": "2026-01-05", "endDate": "2026-01-19", "type": "work"}
		]}]
	}`
	var p model.Project
	require.NoError(t, json.Unmarshal([]byte(doc), &p))

	chart := BuildChart(p, DefaultMinColumns, date("2026-01-07"))
	require.NotNil(t, chart.TodayColumn)
	assert.Equal(t, 1, *chart.TodayColumn)
}

func TestBuildChartLegendListsUsedTypesOnly(t *testing.T) {
	p := scheduleProject("2026-01-05", "2026-02-10",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			{ID: "t1", StartDate: "2026-01-05", EndDate: "2026-01-19", Type: model.TypePermit},
			{ID: "t2", StartDate: "2026-01-05", EndDate: "2026-01-19", Type: model.TypeWork},
			{ID: "t3", StartDate: "2026-01-05", EndDate: "2026-01-19", Type: "mystery"},
		}},
	)

	chart := BuildChart(p, DefaultMinColumns, date("2026-01-07"))

	require.Len(t, chart.Legend, 2)
	// Registry order: work before permit.
	assert.Equal(t, model.TypeWork, chart.Legend[0].Type)
	assert.Equal(t, model.TypePermit, chart.Legend[1].Type)

	// The unknown tag renders as work.
	assert.Equal(t, model.TypeWork, chart.Phases[0].Tasks[2].Type)
	assert.Equal(t, model.TypeWork.Color(), chart.Phases[0].Tasks[2].Color)
}

func TestBuildChartInconsistentDatesDegrade(t *testing.T) {
	p := scheduleProject("", "",
		model.Phase{ID: "ph1", Tasks: []model.Task{
			task("t1", "2026-01-05", "2026-01-19"),
		}},
	)

	chart := BuildChart(p, DefaultMinColumns, date("2026-01-07"))

	assert.Empty(t, chart.Months)
	assert.Zero(t, chart.TotalColumns)
	assert.Nil(t, chart.TodayColumn)
	require.Len(t, chart.Phases, 1)
	assert.Nil(t, chart.Phases[0].Span)
	assert.Nil(t, chart.Phases[0].Tasks[0].Span)
}

func TestBuildChartTasklessPhase(t *testing.T) {
	p := scheduleProject("2026-01-05", "2026-02-10",
		model.Phase{ID: "ph1", Name: "Empty"},
	)

	chart := BuildChart(p, DefaultMinColumns, date("2026-01-07"))

	require.Len(t, chart.Phases, 1)
	assert.Nil(t, chart.Phases[0].Span)
	assert.Zero(t, chart.Phases[0].Weeks)
	assert.Empty(t, chart.Legend)
}
