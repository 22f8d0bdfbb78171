package response

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

type SubcontractorResponse struct {
	ID           string   `json:"id"`
	CompanyName  string   `json:"company_name"`
	ContactName  string   `json:"contact_name,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Services     []string `json:"services,omitempty"`
	PaymentTerms string   `json:"payment_terms,omitempty"`
	HourlyRate   float64  `json:"hourly_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSubcontractor(s entities.Subcontractor) SubcontractorResponse {
	return SubcontractorResponse{
		ID:           s.ID,
		CompanyName:  s.CompanyName,
		ContactName:  s.ContactName,
		Email:        s.Email,
		Phone:        s.Phone,
		Services:     s.Services,
		PaymentTerms: s.PaymentTerms,
		HourlyRate:   s.HourlyRate,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromSubcontractors(list []entities.Subcontractor) []SubcontractorResponse {
	out := make([]SubcontractorResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSubcontractor(s))
	}
	return out
}
