package request

import (
	"subterra_admin/internal/domain/entities"
)

// ContractServiceRequest is the create/update payload for contracted work.
type ContractServiceRequest struct {
	ClientID        string `json:"client_id" binding:"required"`
	SubcontractorID string `json:"subcontractor_id"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Status          string `json:"status"`

	EstimatedCost float64  `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
	Currency      string   `json:"currency"`

	ProgressPercent float64 `json:"progress_percent"`
}

func (r ContractServiceRequest) ToEntity() (entities.ContractService, error) {
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return entities.ContractService{}, err
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return entities.ContractService{}, err
	}

	return entities.ContractService{
		ClientID:        r.ClientID,
		SubcontractorID: r.SubcontractorID,
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          entities.ServiceStatus(r.Status),
		Budget: entities.Budget{
			EstimatedCost: r.EstimatedCost,
			ActualCost:    r.ActualCost,
			Currency:      r.Currency,
		},
		ProgressPercent: r.ProgressPercent,
	}, nil
}
