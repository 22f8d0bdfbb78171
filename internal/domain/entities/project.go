package entities

import "time"

// ProjectStatus is the derived state of a client project.

type ProjectStatus string

const (
	ProjectStatusOnTrack   ProjectStatus = "on_track"
	ProjectStatusAtRisk    ProjectStatus = "at_risk"
	ProjectStatusDelayed   ProjectStatus = "delayed"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ProjectTracking is the derived per-project progress record, recomputed on
// every query. Priority follows end-date proximity only and deliberately does
// not consult Status.
type ProjectTracking struct {
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	ProjectNumber string `json:"project_number"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	ActualProgress   float64 `json:"actual_progress"`
	ExpectedProgress float64 `json:"expected_progress"`

	Status        ProjectStatus `json:"status"`
	Priority      Priority      `json:"priority"`
	DaysRemaining int           `json:"days_remaining"`
	ServiceCount  int           `json:"service_count"`
}
