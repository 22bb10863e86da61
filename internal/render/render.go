// Package render produces the printable HTML chart page. It is the capture
// target for the export pipeline: a headless browser screenshots the page,
// so the markup is self-contained and flags readiness via data-ready.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/Thecityismine/project-ganttflow/internal/model"
	"github.com/Thecityismine/project-ganttflow/internal/timeline"
)

// Chart geometry in pixels, shared with the capture viewport math.
const (
	LabelWidth   = 220
	ColumnWidth  = 28
	RowHeight    = 22
	HeaderHeight = 52
)

//go:embed chart.gohtml
var templateFS embed.FS

type Renderer struct {
	tmpl    *template.Template
	minCols int
}

func NewRenderer(minCols int) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "chart.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart template: %w", err)
	}
	return &Renderer{tmpl: tmpl, minCols: minCols}, nil
}

// bar is a positioned rectangle in the grid.
type bar struct {
	Left  int
	Width int
	Color string
	Label string
}

type monthView struct {
	Label string
	Width int
}

type weekView struct {
	Label string
	First bool
}

type taskView struct {
	Name string
	Bar  *bar
}

type phaseView struct {
	Name  string
	Bar   *bar
	Weeks string
	Tasks []taskView
}

type legendView struct {
	Label    string
	Color    string
	Outlined bool
}

type todayView struct {
	Left   int
	TagTop int
}

type page struct {
	Name      string
	Location  string
	WeeksLong int
	DateLabel string
	GridWidth int
	MinWidth  int
	Months    []monthView
	Weeks     []weekView
	Phases    []phaseView
	Legend    []legendView
	Today     *todayView
}

// ChartHTML renders the chart page for a project.
func (r *Renderer) ChartHTML(w io.Writer, p model.Project, now time.Time) error {
	chart := timeline.BuildChart(p, r.minCols, now)
	return r.tmpl.Execute(w, buildPage(p, chart, now))
}

func buildPage(p model.Project, chart timeline.Chart, now time.Time) page {
	pg := page{
		Name:      p.Name,
		Location:  p.Location,
		WeeksLong: chart.WeeksLong,
		DateLabel: now.Format("January 2, 2006"),
		GridWidth: chart.TotalColumns * ColumnWidth,
	}
	pg.MinWidth = LabelWidth + pg.GridWidth

	for _, m := range chart.Months {
		pg.Months = append(pg.Months, monthView{
			Label: fmt.Sprintf("%s-%02d", strings.ToUpper(m.Month.String()[:3]), m.Year%100),
			Width: len(m.Weeks) * ColumnWidth,
		})
		for i, wk := range m.Weeks {
			pg.Weeks = append(pg.Weeks, weekView{Label: wk.Label, First: i == 0})
		}
	}

	for _, ph := range chart.Phases {
		pv := phaseView{Name: ph.Name}
		if ph.Span != nil {
			pv.Bar = spanBar(*ph.Span, "#444", "")
			if ph.Weeks > 0 {
				pv.Weeks = fmt.Sprintf("%d Weeks", ph.Weeks)
			}
		}
		for _, tk := range ph.Tasks {
			tv := taskView{Name: tk.Name}
			if tk.Span != nil {
				tv.Bar = spanBar(*tk.Span, tk.Color, tk.DurationLabel)
			}
			pv.Tasks = append(pv.Tasks, tv)
		}
		pg.Phases = append(pg.Phases, pv)
	}

	for _, le := range chart.Legend {
		pg.Legend = append(pg.Legend, legendView{
			Label:    le.Label,
			Color:    le.Color,
			Outlined: le.Type == model.TypePermit,
		})
	}

	if chart.TodayColumn != nil {
		pg.Today = &todayView{
			Left:   *chart.TodayColumn*ColumnWidth + ColumnWidth/2 - 1,
			TagTop: HeaderHeight - 14,
		}
	}
	return pg
}

func spanBar(span timeline.ColumnSpan, color, label string) *bar {
	return &bar{
		Left:  span.Start*ColumnWidth + 2,
		Width: (span.End-span.Start+1)*ColumnWidth - 4,
		Color: color,
		Label: label,
	}
}
