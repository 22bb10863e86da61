package mq

import "time"

// Routing keys published on the events exchange.
const (
	RoutingProjectSaved   = "project.saved"
	RoutingProjectDeleted = "project.deleted"
)

// ProjectSavedPayload announces a persisted schedule edit. The worker uses
// it to re-render the chart cache for the project.
type ProjectSavedPayload struct {
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	SavedAt   time.Time `json:"saved_at"`
}

// ProjectDeletedPayload announces a removal so caches can be dropped.
type ProjectDeletedPayload struct {
	ProjectID string    `json:"project_id"`
	DeletedAt time.Time `json:"deleted_at"`
}
