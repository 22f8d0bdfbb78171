package request

import (
	"subterra_admin/internal/domain/entities"
)

// FinancingRequest is the create/update payload for financing lines.
type FinancingRequest struct {
	Lender         string  `json:"lender" binding:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthly_payment"`
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        string  `json:"end_date"`
}

func (r FinancingRequest) ToEntity() (entities.Financing, error) {
	startDate, err := parseRequiredDate(r.StartDate)
	if err != nil {
		return entities.Financing{}, err
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return entities.Financing{}, err
	}

	return entities.Financing{
		Lender:         r.Lender,
		Description:    r.Description,
		Category:       r.Category,
		Principal:      r.Principal,
		MonthlyPayment: r.MonthlyPayment,
		StartDate:      startDate,
		EndDate:        endDate,
	}, nil
}
