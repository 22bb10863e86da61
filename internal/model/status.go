package model

// Status is the project lifecycle badge.
type Status string

const (
	StatusInProgress   Status = "In Progress"
	StatusPermitting   Status = "Permitting"
	StatusInDesign     Status = "In Design"
	StatusConstruction Status = "Construction"
	StatusComplete     Status = "Complete"
	StatusOnHold       Status = "On Hold"
)

var statusColors = map[Status]string{
	StatusInProgress:   "#3b6fe0",
	StatusPermitting:   "#e07c3b",
	StatusInDesign:     "#8b5cf6",
	StatusConstruction: "#34d399",
	StatusComplete:     "#6b7280",
	StatusOnHold:       "#e05555",
}

// Statuses returns all selectable statuses.
func Statuses() []Status {
	return []Status{
		StatusInProgress, StatusPermitting, StatusInDesign,
		StatusConstruction, StatusComplete, StatusOnHold,
	}
}

// Color returns the badge color, gray for unknown values.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#6b7280"
}
