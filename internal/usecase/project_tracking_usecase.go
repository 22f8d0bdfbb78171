package usecase

import (
	"context"
	"fmt"
	"time"

	"subterra_admin/internal/domain/alerts"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase/interfaces"
	"subterra_admin/pkg/logger"
)

// IProjectTrackingUseCase derives progress records for every client project.

type IProjectTrackingUseCase interface {
	ProjectTracking(ctx context.Context) ([]entities.ProjectTracking, error)
}

type ProjectTrackingUseCase struct {
	clients  interfaces.IClientRepository
	services interfaces.IContractServiceRepository
	clock    interfaces.Clock
}

var _ IProjectTrackingUseCase = (*ProjectTrackingUseCase)(nil)

func NewProjectTrackingUseCase(
	clients interfaces.IClientRepository,
	services interfaces.IContractServiceRepository,
	clock interfaces.Clock,
) *ProjectTrackingUseCase {
	return &ProjectTrackingUseCase{clients: clients, services: services, clock: clock}
}

// ProjectTracking derives one record per client carrying a project. Actual
// progress is the mean of the project's non-cancelled service progress;
// expected progress comes from the schedule. Clients whose project has no
// resolvable schedule are skipped rather than failing the listing.
func (u *ProjectTrackingUseCase) ProjectTracking(ctx context.Context) ([]entities.ProjectTracking, error) {
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

	result := make([]entities.ProjectTracking, 0, len(clients))
	for _, client := range clients {
		if !client.HasProject() {
			continue
		}
		svcs := byClient[client.ID]

		start, end, ok := projectSchedule(client, svcs)
		if !ok {
			logger.Log.Debug().Str("client_id", client.ID).Str("project", client.ProjectNumber).
				Msg("skipping project without a resolvable schedule")
			continue
		}

		actual := meanProgress(svcs)
		daysRemaining := alerts.DaysUntil(now, end)

		result = append(result, entities.ProjectTracking{
			ClientID:         client.ID,
			ClientName:       client.Name,
			ProjectNumber:    client.ProjectNumber,
			StartDate:        start,
			EndDate:          end,
			ActualProgress:   actual,
			ExpectedProgress: alerts.ExpectedProgress(now, start, end),
			Status:           alerts.ComputeProjectStatus(now, start, end, actual),
			Priority:         alerts.ProjectPriority(daysRemaining),
			DaysRemaining:    daysRemaining,
			ServiceCount:     len(svcs),
		})
	}
	return result, nil
}

// projectSchedule anchors the project window: contract date (or earliest
// service start) through deadline (or final date).
func projectSchedule(client entities.Client, svcs []entities.ContractService) (start, end time.Time, ok bool) {
	switch {
	case client.ProjectContractDate != nil:
		start = *client.ProjectContractDate
	default:
		for _, svc := range svcs {
			if svc.StartDate == nil {
				continue
			}
			if start.IsZero() || svc.StartDate.Before(start) {
				start = *svc.StartDate
			}
		}
	}

	switch {
	case client.ProjectDeadline != nil:
		end = *client.ProjectDeadline
	case client.ProjectFinalDate != nil:
		end = *client.ProjectFinalDate
	}

	return start, end, !start.IsZero() && !end.IsZero()
}

func meanProgress(svcs []entities.ContractService) float64 {
	if len(svcs) == 0 {
		return 0
	}
	var sum float64
	for _, svc := range svcs {
		sum += svc.ProgressPercent
	}
	return sum / float64(len(svcs))
}
