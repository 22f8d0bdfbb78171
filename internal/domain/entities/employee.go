package entities

import "time"

// Employee backs the employee-hours report and the staff admin forms.
//
// Storage model (DynamoDB):
//   - PK: id
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role,omitempty"`
	HourlyRate  float64   `json:"hourly_rate"`
	WeeklyHours float64   `json:"weekly_hours"`
	HireDate    time.Time `json:"hire_date"`
	Active      bool      `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
