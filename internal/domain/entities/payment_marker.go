package entities

import "time"

// PaymentMarker is the only mutable state owned by the alert engine. It
// records manual "marked as paid" / "reminder sent" / "cancelled" actions
// against a derived alert, keyed by the alert's deterministic id.
//
// Storage model (DynamoDB):
//   - PK: alert_id
//
// Writes are field-merge upserts (UpdateItem SET), last writer wins. A
// marker whose underlying service is deleted simply goes stale; there is no
// foreign-key cleanup.
type PaymentMarker struct {
	AlertID       string     `json:"alert_id"`
	IsPaid        bool       `json:"is_paid"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	IsCancelled   bool       `json:"is_cancelled"`
	ReminderCount int        `json:"reminder_count"`
	LastReminder  *time.Time `json:"last_reminder,omitempty"`
}
