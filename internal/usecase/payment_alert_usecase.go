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
	ErrInvalidAlertID       = errors.New("invalid alert id")
	ErrAlertDataUnavailable = errors.New("alert data unavailable")
	ErrMarkerWriteFailed    = errors.New("payment marker write failed")
)

// clientFallbackTermsDays applies when a client has neither project deadline
// fields nor a service end date to anchor a due date on.
const clientFallbackTermsDays = 30

// IPaymentAlertUseCase derives the three payment alert domains and exposes
// the manual marker mutations. Every listing recomputes from a fresh
// snapshot; nothing is cached between calls.
//
// Mutations deliberately accept any alert id, including ids no longer
// resolvable to a live alert: an operator may settle a marker whose service
// was since cancelled or re-derived.

type IPaymentAlertUseCase interface {
	ClientPaymentAlerts(ctx context.Context) ([]entities.Alert, error)
	SubcontractorPaymentAlerts(ctx context.Context) ([]entities.Alert, error)
	ContractedServicePaymentAlerts(ctx context.Context) ([]entities.Alert, error)
	MarkAsPaid(ctx context.Context, alertID string) error
	MarkAsCancelled(ctx context.Context, alertID string) error
	SendReminder(ctx context.Context, alertID string) error
}

type PaymentAlertUseCase struct {
	clients        interfaces.IClientRepository
	services       interfaces.IContractServiceRepository
	subcontractors interfaces.ISubcontractorRepository
	markers        interfaces.IPaymentMarkerRepository
	clock          interfaces.Clock
}

var _ IPaymentAlertUseCase = (*PaymentAlertUseCase)(nil)

func NewPaymentAlertUseCase(
	clients interfaces.IClientRepository,
	services interfaces.IContractServiceRepository,
	subcontractors interfaces.ISubcontractorRepository,
	markers interfaces.IPaymentMarkerRepository,
	clock interfaces.Clock,
) *PaymentAlertUseCase {
	return &PaymentAlertUseCase{
		clients:        clients,
		services:       services,
		subcontractors: subcontractors,
		markers:        markers,
		clock:          clock,
	}
}

// ClientPaymentAlerts derives one alert per client per associated
// non-cancelled service. A client with no services but a project number
// yields one implicit project-level alert.
func (u *PaymentAlertUseCase) ClientPaymentAlerts(ctx context.Context) ([]entities.Alert, error) {
	now := u.clock.Now()

	clients, err := u.clients.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading clients: %v", ErrAlertDataUnavailable, err)
	}
	services, err := u.services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading services: %v", ErrAlertDataUnavailable, err)
	}

	byClient := make(map[string][]entities.ContractService)
	for _, svc := range services {
		if svc.Status == entities.ServiceStatusCancelled {
			continue
		}
		byClient[svc.ClientID] = append(byClient[svc.ClientID], svc)
	}

	result := make([]entities.Alert, 0, len(services))
	for _, client := range clients {
		svcs := byClient[client.ID]
		if len(svcs) == 0 {
			if !client.HasProject() {
				continue
			}
			alert, err := u.clientAlert(ctx, now, client, nil)
			if err != nil {
				return nil, err
			}
			result = append(result, alert)
			continue
		}
		for i := range svcs {
			alert, err := u.clientAlert(ctx, now, client, &svcs[i])
			if err != nil {
				return nil, err
			}
			result = append(result, alert)
		}
	}
	return result, nil
}

func (u *PaymentAlertUseCase) clientAlert(ctx context.Context, now time.Time, client entities.Client, svc *entities.ContractService) (entities.Alert, error) {
	var (
		id          string
		amount      float64
		currency    string
		serviceID   string
		serviceName string
	)
	if svc == nil {
		id = fmt.Sprintf("client_%s_project_%s", client.ID, client.ProjectNumber)
		serviceName = "Project " + client.ProjectNumber
	} else {
		id = fmt.Sprintf("client_%s_service_%s", client.ID, svc.ID)
		amount = svc.Budget.EstimatedCost
		currency = svc.Budget.Currency
		serviceID = svc.ID
		serviceName = svc.Name
	}

	due := resolveClientDueDate(now, client, svc)

	marker, err := u.markers.Get(ctx, id)
	if err != nil {
		return entities.Alert{}, fmt.Errorf("%w: loading marker %s: %v", ErrAlertDataUnavailable, id, err)
	}

	status := alerts.ComputePaymentStatus(now, due, marker.IsPaid, marker.IsCancelled)
	daysUntilDue := alerts.DaysUntil(now, due)

	return entities.Alert{
		ID:            id,
		Kind:          entities.AlertKindClientPayment,
		ClientID:      client.ID,
		ClientName:    client.Name,
		ServiceID:     serviceID,
		ServiceName:   serviceName,
		Amount:        amount,
		Currency:      currency,
		DueDate:       due,
		DaysUntilDue:  daysUntilDue,
		Status:        status,
		Priority:      alerts.ClientPaymentPriority(status, daysUntilDue, amount),
		IsPaid:        marker.IsPaid,
		PaidDate:      marker.PaidDate,
		ReminderCount: marker.ReminderCount,
		LastReminder:  marker.LastReminder,
		Description:   fmt.Sprintf("Payment due from %s for %s", client.Name, serviceName),
	}, nil
}

// resolveClientDueDate picks the strongest client-level deadline: project
// deadline, then project final date, then the service end date, then a
// 30-day fallback from today.
func resolveClientDueDate(now time.Time, client entities.Client, svc *entities.ContractService) time.Time {
	if client.ProjectDeadline != nil {
		return *client.ProjectDeadline
	}
	if client.ProjectFinalDate != nil {
		return *client.ProjectFinalDate
	}
	if svc != nil && svc.EndDate != nil {
		return *svc.EndDate
	}
	return now.AddDate(0, 0, clientFallbackTermsDays)
}

// SubcontractorPaymentAlerts derives one alert per non-cancelled service
// assigned to an existing subcontractor, due the subcontractor's own payment
// terms after service end.
func (u *PaymentAlertUseCase) SubcontractorPaymentAlerts(ctx context.Context) ([]entities.Alert, error) {
	now := u.clock.Now()

	subs, err := u.subcontractors.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading subcontractors: %v", ErrAlertDataUnavailable, err)
	}
	services, err := u.services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading services: %v", ErrAlertDataUnavailable, err)
	}

	subByID := make(map[string]entities.Subcontractor, len(subs))
	for _, s := range subs {
		subByID[s.ID] = s
	}

	result := make([]entities.Alert, 0, len(services))
	for _, svc := range services {
		if svc.Status == entities.ServiceStatusCancelled || svc.SubcontractorID == "" {
			continue
		}
		sub, ok := subByID[svc.SubcontractorID]
		if !ok {
			logger.Log.Debug().Str("service_id", svc.ID).Str("subcontractor_id", svc.SubcontractorID).
				Msg("skipping alert for dangling subcontractor reference")
			continue
		}
		if svc.EndDate == nil {
			logger.Log.Debug().Str("service_id", svc.ID).Msg("skipping subcontractor alert without end date")
			continue
		}

		id := fmt.Sprintf("%s_%s", svc.ID, sub.ID)
		due := svc.EndDate.AddDate(0, 0, sub.ParseTermsDays())

		marker, err := u.markers.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: loading marker %s: %v", ErrAlertDataUnavailable, id, err)
		}

		status := alerts.ComputePaymentStatus(now, due, marker.IsPaid, false)
		daysUntilDue := alerts.DaysUntil(now, due)

		result = append(result, entities.Alert{
			ID:                id,
			Kind:              entities.AlertKindSubcontractorPayment,
			ClientID:          svc.ClientID,
			ServiceID:         svc.ID,
			ServiceName:       svc.Name,
			SubcontractorID:   sub.ID,
			SubcontractorName: sub.CompanyName,
			Amount:            svc.Budget.EstimatedCost,
			Currency:          svc.Budget.Currency,
			DueDate:           due,
			DaysUntilDue:      daysUntilDue,
			Status:            status,
			Priority:          alerts.SubcontractorPaymentPriority(status, daysUntilDue),
			IsPaid:            marker.IsPaid,
			PaidDate:          marker.PaidDate,
			ReminderCount:     marker.ReminderCount,
			LastReminder:      marker.LastReminder,
			Description:       fmt.Sprintf("Payment due to %s for %s", sub.CompanyName, svc.Name),
		})
	}
	return result, nil
}

// ContractedServicePaymentAlerts derives one alert per non-cancelled
// service, due the cost-tiered default terms after service end.
func (u *PaymentAlertUseCase) ContractedServicePaymentAlerts(ctx context.Context) ([]entities.Alert, error) {
	now := u.clock.Now()

	services, err := u.services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading services: %v", ErrAlertDataUnavailable, err)
	}

	result := make([]entities.Alert, 0, len(services))
	for _, svc := range services {
		if svc.Status == entities.ServiceStatusCancelled {
			continue
		}
		if svc.EndDate == nil {
			logger.Log.Debug().Str("service_id", svc.ID).Msg("skipping contracted-service alert without end date")
			continue
		}

		id := "contracted_service_" + svc.ID
		due := svc.EndDate.AddDate(0, 0, alerts.DefaultPaymentTermsDays(svc.Budget.EstimatedCost))

		marker, err := u.markers.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: loading marker %s: %v", ErrAlertDataUnavailable, id, err)
		}

		status := alerts.ComputePaymentStatus(now, due, marker.IsPaid, false)
		daysUntilDue := alerts.DaysUntil(now, due)

		result = append(result, entities.Alert{
			ID:              id,
			Kind:            entities.AlertKindContractedServicePayment,
			ClientID:        svc.ClientID,
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			SubcontractorID: svc.SubcontractorID,
			Amount:          svc.Budget.EstimatedCost,
			Currency:        svc.Budget.Currency,
			DueDate:         due,
			DaysUntilDue:    daysUntilDue,
			Status:          status,
			Priority:        alerts.ContractedServicePaymentPriority(status, daysUntilDue, svc.Budget.EstimatedCost),
			IsPaid:          marker.IsPaid,
			PaidDate:        marker.PaidDate,
			ReminderCount:   marker.ReminderCount,
			LastReminder:    marker.LastReminder,
			Description:     fmt.Sprintf("Invoice for %s", svc.Name),
		})
	}
	return result, nil
}

// MarkAsPaid records a manual payment against the alert marker. Idempotent:
// repeated calls only refresh the paid date.
func (u *PaymentAlertUseCase) MarkAsPaid(ctx context.Context, alertID string) error {
	alertID = strings.TrimSpace(alertID)
	if alertID == "" {
		return ErrInvalidAlertID
	}
	if err := u.markers.SetPaid(ctx, alertID, u.clock.Now()); err != nil {
		return fmt.Errorf("%w: %v", ErrMarkerWriteFailed, err)
	}
	logger.Log.Info().Str("alert_id", alertID).Msg("alert marked as paid")
	return nil
}

// MarkAsCancelled flags the marker as cancelled; the alert then derives as
// cancelled on the next recomputation.
func (u *PaymentAlertUseCase) MarkAsCancelled(ctx context.Context, alertID string) error {
	alertID = strings.TrimSpace(alertID)
	if alertID == "" {
		return ErrInvalidAlertID
	}
	if err := u.markers.SetCancelled(ctx, alertID); err != nil {
		return fmt.Errorf("%w: %v", ErrMarkerWriteFailed, err)
	}
	logger.Log.Info().Str("alert_id", alertID).Msg("alert marked as cancelled")
	return nil
}

// SendReminder increments the reminder count and stamps the reminder date.
// No cap is enforced.
func (u *PaymentAlertUseCase) SendReminder(ctx context.Context, alertID string) error {
	alertID = strings.TrimSpace(alertID)
	if alertID == "" {
		return ErrInvalidAlertID
	}
	if err := u.markers.IncrementReminder(ctx, alertID, u.clock.Now()); err != nil {
		return fmt.Errorf("%w: %v", ErrMarkerWriteFailed, err)
	}
	logger.Log.Info().Str("alert_id", alertID).Msg("payment reminder recorded")
	return nil
}
