package response

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

type FinancingResponse struct {
	ID             string  `json:"id"`
	Lender         string  `json:"lender"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category,omitempty"`
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthly_payment"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFinancing(f entities.Financing) FinancingResponse {
	return FinancingResponse{
		ID:             f.ID,
		Lender:         f.Lender,
		Description:    f.Description,
		Category:       f.Category,
		Principal:      f.Principal,
		MonthlyPayment: f.MonthlyPayment,
		StartDate:      formatDate(f.StartDate),
		EndDate:        formatDatePtr(f.EndDate),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func FromFinancings(list []entities.Financing) []FinancingResponse {
	out := make([]FinancingResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFinancing(f))
	}
	return out
}
