package response

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

type ContractServiceResponse struct {
	ID              string `json:"id"`
	ClientID        string `json:"client_id"`
	SubcontractorID string `json:"subcontractor_id,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	Status          string `json:"status"`

	EstimatedCost float64  `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost,omitempty"`
	Currency      string   `json:"currency,omitempty"`

	ProgressPercent float64 `json:"progress_percent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContractService(s entities.ContractService) ContractServiceResponse {
	return ContractServiceResponse{
		ID:              s.ID,
		ClientID:        s.ClientID,
		SubcontractorID: s.SubcontractorID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		StartDate:       formatDatePtr(s.StartDate),
		EndDate:         formatDatePtr(s.EndDate),
		Status:          string(s.Status),
		EstimatedCost:   s.Budget.EstimatedCost,
		ActualCost:      s.Budget.ActualCost,
		Currency:        s.Budget.Currency,
		ProgressPercent: s.ProgressPercent,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromContractServices(list []entities.ContractService) []ContractServiceResponse {
	out := make([]ContractServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromContractService(s))
	}
	return out
}
