package entities

import "time"

// Client is a contracting-company customer persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A client may carry a single implicit "project" described by the Project*
// fields. A client with a ProjectNumber but no associated ContractService is
// treated as having one implicit unbilled project-level payment obligation.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`

	ProjectNumber       string     `json:"project_number,omitempty"`
	ProjectContractDate *time.Time `json:"project_contract_date,omitempty"`
	ProjectFinalDate    *time.Time `json:"project_final_date,omitempty"`
	ProjectDeadline     *time.Time `json:"project_deadline,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasProject reports whether the client carries the implicit project.
func (c Client) HasProject() bool {
	return c.ProjectNumber != ""
}
