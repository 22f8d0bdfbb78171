package request

import (
	"subterra_admin/internal/domain/entities"
)

// VehicleRequest is the create/update payload for fleet vehicles. Any of the
// compliance dates may be omitted; absent dates derive no alerts.
type VehicleRequest struct {
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	Year  int    `json:"year"`
	VIN   string `json:"vin"`
	Plate string `json:"plate"`

	LastMaintenanceDate     string `json:"last_maintenance_date"`
	NextMaintenanceDate     string `json:"next_maintenance_date"`
	LicensePlateRenewalDate string `json:"license_plate_renewal_date"`
	DOTRenewalDate          string `json:"dot_renewal_date"`
	InsuranceExpiry         string `json:"insurance_expiry"`
	RegistrationExpiry      string `json:"registration_expiry"`
}

func (r VehicleRequest) ToEntity() (entities.Vehicle, error) {
	v := entities.Vehicle{
		Make:  r.Make,
		Model: r.Model,
		Year:  r.Year,
		VIN:   r.VIN,
		Plate: r.Plate,
	}

	var err error
	if v.LastMaintenanceDate, err = parseDate(r.LastMaintenanceDate); err != nil {
		return entities.Vehicle{}, err
	}
	if v.NextMaintenanceDate, err = parseDate(r.NextMaintenanceDate); err != nil {
		return entities.Vehicle{}, err
	}
	if v.LicensePlateRenewalDate, err = parseDate(r.LicensePlateRenewalDate); err != nil {
		return entities.Vehicle{}, err
	}
	if v.DOTRenewalDate, err = parseDate(r.DOTRenewalDate); err != nil {
		return entities.Vehicle{}, err
	}
	if v.InsuranceExpiry, err = parseDate(r.InsuranceExpiry); err != nil {
		return entities.Vehicle{}, err
	}
	if v.RegistrationExpiry, err = parseDate(r.RegistrationExpiry); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}
