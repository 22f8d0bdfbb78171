package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"subterra_admin/internal/domain/alerts"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase/interfaces"
	"subterra_admin/pkg/logger"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidVehicle  = errors.New("invalid vehicle id")
	// ErrCompletionNotSupported is returned for compliance items other than
	// maintenance. Renewal items (plate, DOT, insurance, registration) have
	// no completion action; the renewed date is entered through the vehicle
	// form instead.
	ErrCompletionNotSupported = errors.New("completion not supported for this compliance item")
)

// IVehicleAlertUseCase derives vehicle compliance alerts and handles the
// maintenance completion action.

type IVehicleAlertUseCase interface {
	VehicleComplianceAlerts(ctx context.Context) ([]entities.Alert, error)
	CompleteComplianceItem(ctx context.Context, vehicleID string, item entities.ComplianceItem) (entities.Vehicle, error)
}

type VehicleAlertUseCase struct {
	vehicles interfaces.IVehicleRepository
	clock    interfaces.Clock
}

var _ IVehicleAlertUseCase = (*VehicleAlertUseCase)(nil)

func NewVehicleAlertUseCase(vehicles interfaces.IVehicleRepository, clock interfaces.Clock) *VehicleAlertUseCase {
	return &VehicleAlertUseCase{vehicles: vehicles, clock: clock}
}

// VehicleComplianceAlerts derives one alert per vehicle per present
// compliance date. Vehicles never consult payment markers: their state is
// carried on the vehicle record itself.
func (u *VehicleAlertUseCase) VehicleComplianceAlerts(ctx context.Context) ([]entities.Alert, error) {
	now := u.clock.Now()

	vehicles, err := u.vehicles.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading vehicles: %v", ErrAlertDataUnavailable, err)
	}

	result := make([]entities.Alert, 0, len(vehicles))
	for _, v := range vehicles {
		for _, ob := range complianceObligations(v) {
			if ob.due == nil {
				continue
			}
			result = append(result, buildComplianceAlert(now, v, ob.item, ob.label, *ob.due))
		}
	}
	return result, nil
}

type obligation struct {
	item  entities.ComplianceItem
	label string
	due   *time.Time
}

func complianceObligations(v entities.Vehicle) []obligation {
	return []obligation{
		{entities.ComplianceMaintenance, "Scheduled maintenance", v.NextMaintenanceDate},
		{entities.ComplianceLicensePlate, "License plate renewal", v.LicensePlateRenewalDate},
		{entities.ComplianceDOT, "DOT renewal", v.DOTRenewalDate},
		{entities.ComplianceInsurance, "Insurance renewal", v.InsuranceExpiry},
		{entities.ComplianceRegistration, "Registration renewal", v.RegistrationExpiry},
	}
}

func buildComplianceAlert(now time.Time, v entities.Vehicle, item entities.ComplianceItem, label string, due time.Time) entities.Alert {
	daysUntilDue := alerts.DaysUntil(now, due)
	return entities.Alert{
		ID:             fmt.Sprintf("%s-%s", item, v.ID),
		Kind:           entities.AlertKindVehicleCompliance,
		VehicleID:      v.ID,
		VehicleLabel:   v.Label(),
		ComplianceItem: item,
		DueDate:        due,
		DaysUntilDue:   daysUntilDue,
		Status:         alerts.ComputeComplianceStatus(now, due),
		Priority:       alerts.CompliancePriority(daysUntilDue),
		Description:    fmt.Sprintf("%s for %s", label, v.Label()),
	}
}

// CompleteComplianceItem resolves a maintenance alert by stamping the
// vehicle's last maintenance date. The next due date is not recomputed; an
// operator re-sets it on the vehicle form.
func (u *VehicleAlertUseCase) CompleteComplianceItem(ctx context.Context, vehicleID string, item entities.ComplianceItem) (entities.Vehicle, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Vehicle{}, ErrInvalidVehicle
	}
	if item != entities.ComplianceMaintenance {
		return entities.Vehicle{}, ErrCompletionNotSupported
	}

	updated, err := u.vehicles.SetLastMaintenanceDate(ctx, vehicleID, u.clock.Now())
	if err != nil {
		return entities.Vehicle{}, fmt.Errorf("%w: %v", ErrMarkerWriteFailed, err)
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	logger.Log.Info().Str("vehicle_id", vehicleID).Msg("maintenance item completed")
	return updated, nil
}
