package model

import (
	"time"

	"github.com/Thecityismine/project-ganttflow/internal/util"
)

// NewTask creates a blank two-week task starting at start (today when start
// is unset or malformed).
func NewTask(start string) Task {
	s, ok := util.ParseDate(start)
	if !ok {
		s = time.Now()
		start = util.FormatDate(s)
	}
	return Task{
		ID:        NewID(),
		Name:      "New Task",
		StartDate: start,
		EndDate:   util.FormatDate(util.AddDays(s, 14)),
		Type:      TypeWork,
	}
}

// NewPhase creates an empty phase.
func NewPhase() Phase {
	return Phase{ID: NewID(), Name: "New Phase", Tasks: []Task{}}
}

// NewTemplateProject builds the canonical starter schedule: five phases,
// twenty-three tasks, offsets in whole weeks from the given start date. Used
// for the very first project on an empty store and for "+ New Project".
func NewTemplateProject(start string) Project {
	s, ok := util.ParseDate(start)
	if !ok {
		s = time.Now()
		start = util.FormatDate(s)
	}
	d := func(offsetWeeks int) string {
		return util.FormatDate(util.AddWeeks(s, offsetWeeks))
	}
	t := func(name string, sw, ew int, typ TaskType) Task {
		return Task{
			ID:        NewID(),
			Name:      name,
			StartDate: d(sw),
			EndDate:   d(ew),
			Type:      typ,
		}
	}
	return Project{
		ID:        NewID(),
		Name:      "New Project",
		Status:    StatusInProgress,
		StartDate: start,
		EndDate:   d(42),
		ShowToday: true,
		Phases: []Phase{
			{ID: NewID(), Name: "Design Start", Tasks: []Task{
				t("Site Survey", 0, 1, TypeWork),
				t("Site Assessment Report", 1, 2, TypeWork),
				t("Colored Test-fit / Mood Board", 2, 4, TypeWork),
				t("Accessibility Report / ADA Document", 3, 5, TypeReview),
			}},
			{ID: NewID(), Name: "Schematic Design", Tasks: []Task{
				t("Material Strategy", 5, 6, TypeWork),
				t("Demo / Power / Ceiling Plan", 5, 7, TypeWork),
				t("Furniture Solution Plan", 6, 8, TypeWork),
				t("EDG: Graphic Opportunity Plan", 7, 9, TypeWork),
				t("White Box Rendering", 7, 9, TypeWork),
				t("LOB Awareness", 8, 9, TypeReview),
			}},
			{ID: NewID(), Name: "Design Development", Tasks: []Task{
				t("Demo / Power / RCP / Finish Plan", 9, 11, TypeWork),
				t("Material Strategy", 9, 10, TypeWork),
				t("AV Assignment Plan", 9, 11, TypeWork),
				t("Sound Masking Plan", 10, 12, TypeWork),
				t("Signage Location Plan", 10, 12, TypeWork),
				t("Power / HVAC Plan", 10, 12, TypeWork),
				t("MER / TR Design Layout", 11, 12, TypeReview),
			}},
			{ID: NewID(), Name: "Construction Documents", Tasks: []Task{
				t("Commissioning Engineer", 12, 15, TypeWork),
				t("Architecture / MEP / Low Voltage", 12, 16, TypeWork),
				t("WAP Location Plan", 13, 16, TypeWork),
				t("Security Permit Drawings", 14, 17, TypeWork),
				t("50% Page Turn", 15, 16, TypeReview),
				t("Landlord Review Set", 16, 18, TypeWork),
				t("90% Page Turn", 18, 19, TypeReview),
				t("Final CD Set", 19, 22, TypeWork),
			}},
			{ID: NewID(), Name: "Permit", Tasks: []Task{
				t("Expedite Building Permit", 22, 42, TypePermit),
				t("Permit Approval / Payment / Pickup", 38, 40, TypePermit),
				t("Internal JPMC Permit Document Review", 16, 19, TypeWork),
			}},
		},
	}
}
