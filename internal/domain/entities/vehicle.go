package entities

import "time"

// Vehicle is a fleet vehicle with up to five independent date-driven
// compliance obligations. Each present date yields one independent alert.
//
// Storage model (DynamoDB):
//   - PK: id
type Vehicle struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year,omitempty"`
	VIN   string `json:"vin,omitempty"`
	Plate string `json:"plate,omitempty"`

	LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`

	NextMaintenanceDate     *time.Time `json:"next_maintenance_date,omitempty"`
	LicensePlateRenewalDate *time.Time `json:"license_plate_renewal_date,omitempty"`
	DOTRenewalDate          *time.Time `json:"dot_renewal_date,omitempty"`
	InsuranceExpiry         *time.Time `json:"insurance_expiry,omitempty"`
	RegistrationExpiry      *time.Time `json:"registration_expiry,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Label is the short human identity used in alert descriptions and reports.
func (v Vehicle) Label() string {
	label := v.Make + " " + v.Model
	if v.Plate != "" {
		label += " (" + v.Plate + ")"
	}
	return label
}
