package request

import (
	"subterra_admin/internal/domain/entities"
)

// SubcontractorRequest is the create/update payload for subcontractors.
// PaymentTerms is the string day count used by the admin form options.
type SubcontractorRequest struct {
	CompanyName  string   `json:"company_name" binding:"required"`
	ContactName  string   `json:"contact_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Services     []string `json:"services"`
	PaymentTerms string   `json:"payment_terms"`
	HourlyRate   float64  `json:"hourly_rate"`
}

func (r SubcontractorRequest) ToEntity() entities.Subcontractor {
	return entities.Subcontractor{
		CompanyName:  r.CompanyName,
		ContactName:  r.ContactName,
		Email:        r.Email,
		Phone:        r.Phone,
		Services:     r.Services,
		PaymentTerms: r.PaymentTerms,
		HourlyRate:   r.HourlyRate,
	}
}
