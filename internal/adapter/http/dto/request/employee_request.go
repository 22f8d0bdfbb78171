package request

import (
	"subterra_admin/internal/domain/entities"
)

// EmployeeRequest is the create/update payload for staff records.
type EmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role"`
	HourlyRate  float64 `json:"hourly_rate"`
	WeeklyHours float64 `json:"weekly_hours"`
	HireDate    string  `json:"hire_date" binding:"required"`
	Active      *bool   `json:"active"`
}

func (r EmployeeRequest) ToEntity() (entities.Employee, error) {
	hireDate, err := parseRequiredDate(r.HireDate)
	if err != nil {
		return entities.Employee{}, err
	}

	// New staff default to active unless the form says otherwise.
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return entities.Employee{
		Name:        r.Name,
		Role:        r.Role,
		HourlyRate:  r.HourlyRate,
		WeeklyHours: r.WeeklyHours,
		HireDate:    hireDate,
		Active:      active,
	}, nil
}
