package response

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

type VehicleResponse struct {
	ID    string `json:"id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year,omitempty"`
	VIN   string `json:"vin,omitempty"`
	Plate string `json:"plate,omitempty"`
	Label string `json:"label"`

	LastMaintenanceDate     string `json:"last_maintenance_date,omitempty"`
	NextMaintenanceDate     string `json:"next_maintenance_date,omitempty"`
	LicensePlateRenewalDate string `json:"license_plate_renewal_date,omitempty"`
	DOTRenewalDate          string `json:"dot_renewal_date,omitempty"`
	InsuranceExpiry         string `json:"insurance_expiry,omitempty"`
	RegistrationExpiry      string `json:"registration_expiry,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                      v.ID,
		Make:                    v.Make,
		Model:                   v.Model,
		Year:                    v.Year,
		VIN:                     v.VIN,
		Plate:                   v.Plate,
		Label:                   v.Label(),
		LastMaintenanceDate:     formatDatePtr(v.LastMaintenanceDate),
		NextMaintenanceDate:     formatDatePtr(v.NextMaintenanceDate),
		LicensePlateRenewalDate: formatDatePtr(v.LicensePlateRenewalDate),
		DOTRenewalDate:          formatDatePtr(v.DOTRenewalDate),
		InsuranceExpiry:         formatDatePtr(v.InsuranceExpiry),
		RegistrationExpiry:      formatDatePtr(v.RegistrationExpiry),
		CreatedAt:               v.CreatedAt,
		UpdatedAt:               v.UpdatedAt,
	}
}

func FromVehicles(list []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromVehicle(v))
	}
	return out
}
