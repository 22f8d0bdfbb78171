package entities

import "time"

// ServiceStatus represents the lifecycle of a contracted unit of work.
//
// Transitions are forward only and externally driven; the engine never moves
// a service between statuses on its own. Cancelled services are excluded
// from every payment-alert derivation.

type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

// Budget is the monetary envelope of a contracted service.
type Budget struct {
	EstimatedCost float64  `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost,omitempty"`
	Currency      string   `json:"currency"`
}

// ContractService is one contracted unit of work persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ClientID and SubcontractorID are weak references; the engine tolerates
// dangling ones (the affected alert is simply not derived).
type ContractService struct {
	ID              string        `json:"id"`
	ClientID        string        `json:"client_id"`
	SubcontractorID string        `json:"subcontractor_id,omitempty"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Category        string        `json:"category,omitempty"`
	StartDate       *time.Time    `json:"start_date,omitempty"`
	EndDate         *time.Time    `json:"end_date,omitempty"`
	Status          ServiceStatus `json:"status"`
	Budget          Budget        `json:"budget"`

	// ProgressPercent is maintained by operators and feeds project tracking.
	ProgressPercent float64 `json:"progress_percent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
