package entities

import "time"

// Financing is a running loan/financing line (equipment, vehicles, working
// capital). It feeds the expense-breakdown and cash-flow reports.
//
// Storage model (DynamoDB):
//   - PK: id
type Financing struct {
	ID             string     `json:"id"`
	Lender         string     `json:"lender"`
	Description    string     `json:"description,omitempty"`
	Category       string     `json:"category,omitempty"`
	Principal      float64    `json:"principal"`
	MonthlyPayment float64    `json:"monthly_payment"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
