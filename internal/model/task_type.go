package model

// TaskType is the closed set of bar types. Unknown tags normalize to
// TypeWork so documents written by older clients still render.
type TaskType string

const (
	TypeWork      TaskType = "work"
	TypeReview    TaskType = "review"
	TypePermit    TaskType = "permit"
	TypeGCBid     TaskType = "gc_bid"
	TypeFurniture TaskType = "furniture"
	TypeMERFreeze TaskType = "mer_freeze"
	TypeMERRoom   TaskType = "mer_room"
)

type taskTypeInfo struct {
	Label string
	Color string
}

// taskTypeRegistry is ordered; the legend renders in this order.
var taskTypeOrder = []TaskType{
	TypeWork, TypeReview, TypePermit, TypeGCBid,
	TypeFurniture, TypeMERFreeze, TypeMERRoom,
}

var taskTypeRegistry = map[TaskType]taskTypeInfo{
	TypeWork:      {Label: "Work", Color: "#3b6fe0"},
	TypeReview:    {Label: "Review / Approval", Color: "#e07c3b"},
	TypePermit:    {Label: "Permit", Color: "#111111"},
	TypeGCBid:     {Label: "GC Bid", Color: "#22c55e"},
	TypeFurniture: {Label: "Furniture", Color: "#16a34a"},
	TypeMERFreeze: {Label: "MER Freeze", Color: "#dc2626"},
	TypeMERRoom:   {Label: "MER Room", Color: "#1e3a8a"},
}

// Normalize maps unknown tags to TypeWork.
func (t TaskType) Normalize() TaskType {
	if _, ok := taskTypeRegistry[t]; ok {
		return t
	}
	return TypeWork
}

// Label returns the display name for the type.
func (t TaskType) Label() string {
	return taskTypeRegistry[t.Normalize()].Label
}

// Color returns the bar color for the type.
func (t TaskType) Color() string {
	return taskTypeRegistry[t.Normalize()].Color
}

// TaskTypes returns the registry in legend order.
func TaskTypes() []TaskType {
	out := make([]TaskType, len(taskTypeOrder))
	copy(out, taskTypeOrder)
	return out
}
