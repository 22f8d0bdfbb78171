package response

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`

	ProjectNumber       string `json:"project_number,omitempty"`
	ProjectContractDate string `json:"project_contract_date,omitempty"`
	ProjectFinalDate    string `json:"project_final_date,omitempty"`
	ProjectDeadline     string `json:"project_deadline,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Company:             c.Company,
		Email:               c.Email,
		Phone:               c.Phone,
		City:                c.City,
		State:               c.State,
		ProjectNumber:       c.ProjectNumber,
		ProjectContractDate: formatDatePtr(c.ProjectContractDate),
		ProjectFinalDate:    formatDatePtr(c.ProjectFinalDate),
		ProjectDeadline:     formatDatePtr(c.ProjectDeadline),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func FromClients(list []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}
