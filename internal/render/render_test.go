package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thecityismine/project-ganttflow/internal/model"
	"github.com/Thecityismine/project-ganttflow/internal/timeline"
)

func renderProject(t *testing.T, p model.Project, now time.Time) string {
	t.Helper()
	r, err := NewRenderer(timeline.DefaultMinColumns)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.ChartHTML(&buf, p, now))
	return buf.String()
}

func TestChartHTMLTemplateProject(t *testing.T) {
	p := model.NewTemplateProject("2026-02-18")
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local)

	html := renderProject(t, p, now)

	assert.Contains(t, html, `data-ready="true"`)
	assert.Contains(t, html, "New Project")
	assert.Contains(t, html, "FEB-26")
	assert.Contains(t, html, "W1")
	assert.Contains(t, html, "Design Start")
	assert.Contains(t, html, "TODAY")
	assert.Contains(t, html, "Review / Approval")
	assert.Contains(t, html, "March 4, 2026")
}

func TestChartHTMLHidesTodayWhenDisabled(t *testing.T) {
	p := model.NewTemplateProject("2026-02-18")
	p.ShowToday = false

	html := renderProject(t, p, time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local))
	assert.NotContains(t, html, "TODAY")
}

func TestChartHTMLEmptyProject(t *testing.T) {
	p := model.Project{ID: "p1", Name: "Bare"}

	html := renderProject(t, p, time.Now())
	assert.Contains(t, html, `data-ready="true"`)
	assert.Contains(t, html, "Bare")
}

func TestBuildPageGeometry(t *testing.T) {
	p := model.Project{
		ID:        "p1",
		Name:      "Geo",
		StartDate: "2026-01-01",
		EndDate:   "2026-01-28",
		ShowToday: true,
		Phases: []model.Phase{{ID: "ph1", Name: "Phase", Tasks: []model.Task{{
			ID: "t1", Name: "Task", StartDate: "2026-01-01", EndDate: "2026-01-14",
			Type: model.TypeWork,
		}}}},
	}
	chart := timeline.BuildChart(p, 8, time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local))
	pg := buildPage(p, chart, time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local))

	assert.Equal(t, 8*ColumnWidth, pg.GridWidth)
	assert.Equal(t, LabelWidth+8*ColumnWidth, pg.MinWidth)
	assert.Equal(t, "JAN-26", pg.Months[0].Label)

	// Task spans weeks 1-3 of January (Jan 1 falls in the week of Dec 29).
	require.NotNil(t, pg.Phases[0].Tasks[0].Bar)
	assert.Equal(t, 2, pg.Phases[0].Tasks[0].Bar.Left)
	assert.Equal(t, 3*ColumnWidth-4, pg.Phases[0].Tasks[0].Bar.Width)

	// Today (Jan 7) sits in the second week, column index 1.
	require.NotNil(t, pg.Today)
	assert.Equal(t, ColumnWidth+ColumnWidth/2-1, pg.Today.Left)
}
