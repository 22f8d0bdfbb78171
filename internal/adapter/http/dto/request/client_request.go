package request

import (
	"subterra_admin/internal/domain/entities"
)

// ClientRequest is the create/update payload for clients. Dates arrive as
// YYYY-MM-DD strings from the admin forms.
type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	State   string `json:"state"`

	ProjectNumber       string `json:"project_number"`
	ProjectContractDate string `json:"project_contract_date"`
	ProjectFinalDate    string `json:"project_final_date"`
	ProjectDeadline     string `json:"project_deadline"`
}

func (r ClientRequest) ToEntity() (entities.Client, error) {
	contractDate, err := parseDate(r.ProjectContractDate)
	if err != nil {
		return entities.Client{}, err
	}
	finalDate, err := parseDate(r.ProjectFinalDate)
	if err != nil {
		return entities.Client{}, err
	}
	deadline, err := parseDate(r.ProjectDeadline)
	if err != nil {
		return entities.Client{}, err
	}

	return entities.Client{
		Name:                r.Name,
		Company:             r.Company,
		Email:               r.Email,
		Phone:               r.Phone,
		City:                r.City,
		State:               r.State,
		ProjectNumber:       r.ProjectNumber,
		ProjectContractDate: contractDate,
		ProjectFinalDate:    finalDate,
		ProjectDeadline:     deadline,
	}, nil
}
