package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Project is the top-level schedulable document. Dates are local calendar
// dates in "2006-01-02" form; an empty string means the date is unset.
// StartDate <= EndDate is not enforced: consumers must degrade gracefully
// on inconsistent ranges instead of failing.
type Project struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Status    Status  `json:"status"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	ShowToday bool    `json:"showToday"`
	Phases    []Phase `json:"phases"`
}

// UnmarshalJSON defaults showToday to true when the document omits it.
// Hiding the today line is an explicit choice; older documents that predate
// the field keep showing it.
func (p *Project) UnmarshalJSON(data []byte) error {
	type alias Project
	aux := struct {
		ShowToday *bool `json:"showToday"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ShowToday = aux.ShowToday == nil || *aux.ShowToday
	return nil
}

// Phase groups tasks. It carries no dates of its own; its displayed span is
// derived from min(task starts)..max(task ends).
type Phase struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Task is a single bar on the chart.
type Task struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Type          TaskType `json:"type"`
	DurationLabel string   `json:"durationLabel"`
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy. Editing flows always clone before mutating so
// the current and next snapshots never alias.
func (p Project) Clone() Project {
	out := p
	out.Phases = make([]Phase, len(p.Phases))
	for i, ph := range p.Phases {
		cp := ph
		cp.Tasks = make([]Task, len(ph.Tasks))
		copy(cp.Tasks, ph.Tasks)
		out.Phases[i] = cp
	}
	return out
}

// Duplicate deep-copies the project and regenerates every identifier so the
// copy has no identity overlap with the source.
func (p Project) Duplicate() Project {
	out := p.Clone()
	out.ID = NewID()
	out.Name = p.Name + " (Copy)"
	for i := range out.Phases {
		out.Phases[i].ID = NewID()
		for j := range out.Phases[i].Tasks {
			out.Phases[i].Tasks[j].ID = NewID()
		}
	}
	return out
}

// TaskCount returns the total number of tasks across all phases.
func (p Project) TaskCount() int {
	n := 0
	for _, ph := range p.Phases {
		n += len(ph.Tasks)
	}
	return n
}
