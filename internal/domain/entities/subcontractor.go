package entities

import (
	"strconv"
	"time"
)

// Subcontractor is an external crew the company delegates work to.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PaymentTerms is stored as the string number of days ("7", "15" or "30"),
// matching the admin forms; ParseTermsDays tolerates bad values.
type Subcontractor struct {
	ID           string   `json:"id"`
	CompanyName  string   `json:"company_name"`
	ContactName  string   `json:"contact_name,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Services     []string `json:"services,omitempty"`
	PaymentTerms string   `json:"payment_terms"`
	HourlyRate   float64  `json:"hourly_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSubcontractorTermsDays applies when PaymentTerms is absent or malformed.
const DefaultSubcontractorTermsDays = 30

// ParseTermsDays returns the payment terms as a day count.
func (s Subcontractor) ParseTermsDays() int {
	days, err := strconv.Atoi(s.PaymentTerms)
	if err != nil || days <= 0 {
		return DefaultSubcontractorTermsDays
	}
	return days
}
