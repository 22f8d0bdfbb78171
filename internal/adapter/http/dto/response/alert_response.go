package response

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

// AlertResponse is the wire form of a derived alert. Entity keys that do not
// apply to the alert's kind are omitted.
type AlertResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	ClientID          string `json:"client_id,omitempty"`
	ClientName        string `json:"client_name,omitempty"`
	ServiceID         string `json:"service_id,omitempty"`
	ServiceName       string `json:"service_name,omitempty"`
	SubcontractorID   string `json:"subcontractor_id,omitempty"`
	SubcontractorName string `json:"subcontractor_name,omitempty"`
	VehicleID         string `json:"vehicle_id,omitempty"`
	VehicleLabel      string `json:"vehicle_label,omitempty"`
	ComplianceItem    string `json:"compliance_item,omitempty"`

	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency,omitempty"`
	DueDate      string  `json:"due_date"`
	DaysUntilDue int     `json:"days_until_due"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`

	IsPaid        bool       `json:"is_paid"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	ReminderCount int        `json:"reminder_count"`
	LastReminder  *time.Time `json:"last_reminder,omitempty"`

	Description string `json:"description,omitempty"`
}

func FromAlert(a entities.Alert) AlertResponse {
	return AlertResponse{
		ID:                a.ID,
		Kind:              string(a.Kind),
		ClientID:          a.ClientID,
		ClientName:        a.ClientName,
		ServiceID:         a.ServiceID,
		ServiceName:       a.ServiceName,
		SubcontractorID:   a.SubcontractorID,
		SubcontractorName: a.SubcontractorName,
		VehicleID:         a.VehicleID,
		VehicleLabel:      a.VehicleLabel,
		ComplianceItem:    string(a.ComplianceItem),
		Amount:            a.Amount,
		Currency:          a.Currency,
		DueDate:           formatDate(a.DueDate),
		DaysUntilDue:      a.DaysUntilDue,
		Status:            string(a.Status),
		Priority:          string(a.Priority),
		IsPaid:            a.IsPaid,
		PaidDate:          a.PaidDate,
		ReminderCount:     a.ReminderCount,
		LastReminder:      a.LastReminder,
		Description:       a.Description,
	}
}

func FromAlerts(list []entities.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAlert(a))
	}
	return out
}
