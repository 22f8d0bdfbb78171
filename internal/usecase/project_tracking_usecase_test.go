package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"subterra_admin/internal/domain/entities"
	mock_interfaces "subterra_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectTrackingUseCase_ProjectTracking(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("derives one record per client with a project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		uc := NewProjectTrackingUseCase(clients, services, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{
				ID: "c1", Name: "Acme", ProjectNumber: "P-1",
				ProjectContractDate: datePtr(2026, time.February, 8),
				ProjectDeadline:     datePtr(2026, time.April, 9),
			},
			{ID: "c2", Name: "No Project"},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Status: entities.ServiceStatusInProgress, ProgressPercent: 40},
			{ID: "s2", ClientID: "c1", Status: entities.ServiceStatusInProgress, ProgressPercent: 60},
			{ID: "s3", ClientID: "c1", Status: entities.ServiceStatusCancelled, ProgressPercent: 0},
		}, nil)

		records, err := uc.ProjectTracking(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		r := records[0]
		if r.ClientID != "c1" || r.ProjectNumber != "P-1" {
			t.Fatalf("unexpected record identity: %+v", r)
		}
		// cancelled service excluded from the mean
		if r.ActualProgress != 50 {
			t.Fatalf("expected actual progress 50, got %v", r.ActualProgress)
		}
		if r.ServiceCount != 2 {
			t.Fatalf("expected 2 counted services, got %d", r.ServiceCount)
		}
		// 30 of 60 days elapsed
		if r.ExpectedProgress != 50 {
			t.Fatalf("expected expected progress 50, got %v", r.ExpectedProgress)
		}
		if r.Status != entities.ProjectStatusOnTrack {
			t.Fatalf("expected on_track, got %s", r.Status)
		}
		if r.DaysRemaining != 30 || r.Priority != entities.PriorityMedium {
			t.Fatalf("unexpected schedule derivation: %+v", r)
		}
	})

	t.Run("trailing progress beyond the margin is at risk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		uc := NewProjectTrackingUseCase(clients, services, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{
				ID: "c1", Name: "Acme", ProjectNumber: "P-1",
				ProjectContractDate: datePtr(2026, time.February, 8),
				ProjectDeadline:     datePtr(2026, time.April, 9),
			},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Status: entities.ServiceStatusInProgress, ProgressPercent: 20},
		}, nil)

		records, err := uc.ProjectTracking(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if records[0].Status != entities.ProjectStatusAtRisk {
			t.Fatalf("expected at_risk, got %s", records[0].Status)
		}
	})

	t.Run("schedule falls back to earliest service start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		uc := NewProjectTrackingUseCase(clients, services, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{ID: "c1", Name: "Acme", ProjectNumber: "P-1", ProjectFinalDate: datePtr(2026, time.June, 1)},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Status: entities.ServiceStatusPending, StartDate: datePtr(2026, time.March, 1)},
			{ID: "s2", ClientID: "c1", Status: entities.ServiceStatusPending, StartDate: datePtr(2026, time.February, 1)},
		}, nil)

		records, err := uc.ProjectTracking(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		if !records[0].StartDate.Equal(want) {
			t.Fatalf("expected start %v, got %v", want, records[0].StartDate)
		}
	})

	t.Run("project without a resolvable schedule is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		uc := NewProjectTrackingUseCase(clients, services, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{ID: "c1", Name: "Acme", ProjectNumber: "P-1"},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		records, err := uc.ProjectTracking(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected no records, got %d", len(records))
		}
	})

	t.Run("repository failure surfaces as alert data unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewProjectTrackingUseCase(clients, nil, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("dynamo down"))

		_, err := uc.ProjectTracking(context.Background())
		if !errors.Is(err, ErrAlertDataUnavailable) {
			t.Fatalf("expected ErrAlertDataUnavailable, got %v", err)
		}
	})
}
