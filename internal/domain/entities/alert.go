package entities

import "time"

// AlertKind discriminates the alert domains. Dispatch on Kind (and
// ComplianceItem for vehicle alerts) replaces any inspection of the alert id
// string.

type AlertKind string

const (
	AlertKindClientPayment            AlertKind = "client_payment"
	AlertKindSubcontractorPayment     AlertKind = "subcontractor_payment"
	AlertKindContractedServicePayment AlertKind = "contracted_service_payment"
	AlertKindVehicleCompliance        AlertKind = "vehicle_compliance"
)

// ComplianceItem identifies which of a vehicle's date-driven obligations an
// alert refers to.

type ComplianceItem string

const (
	ComplianceMaintenance  ComplianceItem = "maintenance"
	ComplianceLicensePlate ComplianceItem = "license_plate"
	ComplianceDOT          ComplianceItem = "dot"
	ComplianceInsurance    ComplianceItem = "insurance"
	ComplianceRegistration ComplianceItem = "registration"
)

// AlertStatus is the derived state of an alert. Payment alerts use
// pending/due_today/overdue/paid/cancelled; vehicle compliance alerts only
// ever compute pending/overdue (completion is an explicit operator action,
// never derived).

type AlertStatus string

const (
	AlertStatusPending   AlertStatus = "pending"
	AlertStatusDueToday  AlertStatus = "due_today"
	AlertStatusOverdue   AlertStatus = "overdue"
	AlertStatusPaid      AlertStatus = "paid"
	AlertStatusCancelled AlertStatus = "cancelled"
)

// Priority is the derived urgency tier of an alert or project.

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Alert is a derived projection, recomputed on every query and never
// persisted. ID is deterministic over the source entity keys so that
// PaymentMarker lookups stay idempotent across recomputations.
type Alert struct {
	ID   string    `json:"id"`
	Kind AlertKind `json:"kind"`

	ClientID          string         `json:"client_id,omitempty"`
	ClientName        string         `json:"client_name,omitempty"`
	ServiceID         string         `json:"service_id,omitempty"`
	ServiceName       string         `json:"service_name,omitempty"`
	SubcontractorID   string         `json:"subcontractor_id,omitempty"`
	SubcontractorName string         `json:"subcontractor_name,omitempty"`
	VehicleID         string         `json:"vehicle_id,omitempty"`
	VehicleLabel      string         `json:"vehicle_label,omitempty"`
	ComplianceItem    ComplianceItem `json:"compliance_item,omitempty"`

	Amount   float64   `json:"amount"`
	Currency string    `json:"currency,omitempty"`
	DueDate  time.Time `json:"due_date"`

	// DaysUntilDue is negative once the due date has passed.
	DaysUntilDue int         `json:"days_until_due"`
	Status       AlertStatus `json:"status"`
	Priority     Priority    `json:"priority"`

	IsPaid        bool       `json:"is_paid"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	ReminderCount int        `json:"reminder_count"`
	LastReminder  *time.Time `json:"last_reminder,omitempty"`

	Description string `json:"description,omitempty"`
}
