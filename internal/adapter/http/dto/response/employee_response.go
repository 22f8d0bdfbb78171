package response

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

type EmployeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role,omitempty"`
	HourlyRate  float64 `json:"hourly_rate"`
	WeeklyHours float64 `json:"weekly_hours"`
	HireDate    string  `json:"hire_date"`
	Active      bool    `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Role:        e.Role,
		HourlyRate:  e.HourlyRate,
		WeeklyHours: e.WeeklyHours,
		HireDate:    formatDate(e.HireDate),
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromEmployees(list []entities.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEmployee(e))
	}
	return out
}
