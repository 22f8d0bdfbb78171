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

func fixedClock(ctrl *gomock.Controller, now time.Time) *mock_interfaces.MockClock {
	clock := mock_interfaces.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	return clock
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestPaymentAlertUseCase_ClientPaymentAlerts(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	t.Run("one alert per client per non-cancelled service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(clients, services, nil, markers, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{ID: "c1", Name: "Acme Utilities", ProjectDeadline: datePtr(2026, time.March, 20)},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Name: "Trenching", Status: entities.ServiceStatusInProgress,
				Budget: entities.Budget{EstimatedCost: 12000, Currency: "USD"}},
			{ID: "s2", ClientID: "c1", Name: "Boring", Status: entities.ServiceStatusCancelled,
				Budget: entities.Budget{EstimatedCost: 8000, Currency: "USD"}},
		}, nil)
		markers.EXPECT().Get(gomock.Any(), "client_c1_service_s1").Return(entities.PaymentMarker{}, nil)

		alerts, err := uc.ClientPaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		a := alerts[0]
		if a.ID != "client_c1_service_s1" || a.Kind != entities.AlertKindClientPayment {
			t.Fatalf("unexpected alert identity: %+v", a)
		}
		if a.Amount != 12000 || a.Currency != "USD" {
			t.Fatalf("unexpected amount: %+v", a)
		}
		if a.Status != entities.AlertStatusPending || a.DaysUntilDue != 10 {
			t.Fatalf("unexpected derivation: status=%s days=%d", a.Status, a.DaysUntilDue)
		}
		// amount over 5000 forces high even with 10 days left
		if a.Priority != entities.PriorityHigh {
			t.Fatalf("expected high priority, got %s", a.Priority)
		}
	})

	t.Run("ids are stable across recomputations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(clients, services, nil, markers, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{ID: "c1", Name: "Acme", ProjectDeadline: datePtr(2026, time.April, 1)},
		}, nil).Times(2)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Name: "Trenching", Status: entities.ServiceStatusPending},
		}, nil).Times(2)
		markers.EXPECT().Get(gomock.Any(), "client_c1_service_s1").Return(entities.PaymentMarker{}, nil).Times(2)

		first, err := uc.ClientPaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.ClientPaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first[0].ID != second[0].ID {
			t.Fatalf("alert id changed between runs: %s vs %s", first[0].ID, second[0].ID)
		}
	})

	t.Run("client with project but no services yields implicit project alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(clients, services, nil, markers, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{ID: "c1", Name: "Acme", ProjectNumber: "P-42", ProjectFinalDate: datePtr(2026, time.March, 11)},
			{ID: "c2", Name: "No Project"},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		markers.EXPECT().Get(gomock.Any(), "client_c1_project_P-42").Return(entities.PaymentMarker{}, nil)

		alerts, err := uc.ClientPaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].ID != "client_c1_project_P-42" || alerts[0].ServiceName != "Project P-42" {
			t.Fatalf("unexpected implicit project alert: %+v", alerts[0])
		}
		if alerts[0].Amount != 0 {
			t.Fatalf("implicit project alert should carry no amount, got %v", alerts[0].Amount)
		}
	})

	t.Run("marker state flows into the derived alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(clients, services, nil, markers, fixedClock(ctrl, now))

		paidAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{ID: "c1", Name: "Acme", ProjectDeadline: datePtr(2026, time.February, 1)},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Name: "Trenching", Status: entities.ServiceStatusCompleted},
		}, nil)
		markers.EXPECT().Get(gomock.Any(), "client_c1_service_s1").Return(entities.PaymentMarker{
			AlertID: "client_c1_service_s1", IsPaid: true, PaidDate: &paidAt, ReminderCount: 2,
		}, nil)

		alerts, err := uc.ClientPaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a := alerts[0]
		// paid wins over an overdue due date, and terminal status is never urgent
		if a.Status != entities.AlertStatusPaid || a.Priority != entities.PriorityLow {
			t.Fatalf("expected paid/low, got %s/%s", a.Status, a.Priority)
		}
		if !a.IsPaid || a.PaidDate == nil || a.ReminderCount != 2 {
			t.Fatalf("marker state lost: %+v", a)
		}
	})

	t.Run("repository failure surfaces as alert data unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewPaymentAlertUseCase(clients, nil, nil, nil, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("dynamo down"))

		_, err := uc.ClientPaymentAlerts(context.Background())
		if !errors.Is(err, ErrAlertDataUnavailable) {
			t.Fatalf("expected ErrAlertDataUnavailable, got %v", err)
		}
	})

	t.Run("marker read failure surfaces as alert data unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(clients, services, nil, markers, fixedClock(ctrl, now))

		clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
			{ID: "c1", Name: "Acme", ProjectDeadline: datePtr(2026, time.April, 1)},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Status: entities.ServiceStatusPending},
		}, nil)
		markers.EXPECT().Get(gomock.Any(), "client_c1_service_s1").Return(entities.PaymentMarker{}, errors.New("dynamo down"))

		_, err := uc.ClientPaymentAlerts(context.Background())
		if !errors.Is(err, ErrAlertDataUnavailable) {
			t.Fatalf("expected ErrAlertDataUnavailable, got %v", err)
		}
	})
}

func TestPaymentAlertUseCase_SubcontractorPaymentAlerts(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("due date is service end plus subcontractor terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		subs := mock_interfaces.NewMockISubcontractorRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, services, subs, markers, fixedClock(ctrl, now))

		subs.EXPECT().GetAll(gomock.Any()).Return([]entities.Subcontractor{
			{ID: "sub1", CompanyName: "Dig Deep LLC", PaymentTerms: "15"},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", SubcontractorID: "sub1", Name: "Boring",
				Status: entities.ServiceStatusCompleted, EndDate: datePtr(2026, time.March, 1),
				Budget: entities.Budget{EstimatedCost: 4000, Currency: "USD"}},
		}, nil)
		markers.EXPECT().Get(gomock.Any(), "s1_sub1").Return(entities.PaymentMarker{}, nil)

		alerts, err := uc.SubcontractorPaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		a := alerts[0]
		wantDue := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
		if !a.DueDate.Equal(wantDue) {
			t.Fatalf("expected due %v, got %v", wantDue, a.DueDate)
		}
		if a.SubcontractorName != "Dig Deep LLC" || a.Kind != entities.AlertKindSubcontractorPayment {
			t.Fatalf("unexpected alert: %+v", a)
		}
		// 6 days out lands in the 7-day medium band
		if a.Priority != entities.PriorityMedium {
			t.Fatalf("expected medium priority, got %s", a.Priority)
		}
	})

	t.Run("dangling subcontractor and missing end date are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		subs := mock_interfaces.NewMockISubcontractorRepository(ctrl)
		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, services, subs, markers, fixedClock(ctrl, now))

		subs.EXPECT().GetAll(gomock.Any()).Return([]entities.Subcontractor{
			{ID: "sub1", CompanyName: "Dig Deep LLC", PaymentTerms: "30"},
		}, nil)
		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", SubcontractorID: "ghost", Status: entities.ServiceStatusPending, EndDate: datePtr(2026, time.April, 1)},
			{ID: "s2", SubcontractorID: "sub1", Status: entities.ServiceStatusPending},
			{ID: "s3", Status: entities.ServiceStatusPending, EndDate: datePtr(2026, time.April, 1)},
		}, nil)

		alerts, err := uc.SubcontractorPaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 0 {
			t.Fatalf("expected no alerts, got %d", len(alerts))
		}
	})
}

func TestPaymentAlertUseCase_ContractedServicePaymentAlerts(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("terms scale with estimated cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, services, nil, markers, fixedClock(ctrl, now))

		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", ClientID: "c1", Name: "Directional bore", Status: entities.ServiceStatusCompleted,
				EndDate: datePtr(2026, time.March, 1),
				Budget:  entities.Budget{EstimatedCost: 60000, Currency: "USD"}},
		}, nil)
		markers.EXPECT().Get(gomock.Any(), "contracted_service_s1").Return(entities.PaymentMarker{}, nil)

		alerts, err := uc.ContractedServicePaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a := alerts[0]
		// 60000 sits in the 45-day tier
		wantDue := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
		if !a.DueDate.Equal(wantDue) {
			t.Fatalf("expected due %v, got %v", wantDue, a.DueDate)
		}
		if a.ID != "contracted_service_s1" || a.Kind != entities.AlertKindContractedServicePayment {
			t.Fatalf("unexpected alert: %+v", a)
		}
	})

	t.Run("overdue invoice derives high priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		services := mock_interfaces.NewMockIContractServiceRepository(ctrl)
		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, services, nil, markers, fixedClock(ctrl, now))

		services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
			{ID: "s1", Name: "Potholing", Status: entities.ServiceStatusCompleted,
				EndDate: datePtr(2026, time.January, 1),
				Budget:  entities.Budget{EstimatedCost: 1000, Currency: "USD"}},
		}, nil)
		markers.EXPECT().Get(gomock.Any(), "contracted_service_s1").Return(entities.PaymentMarker{}, nil)

		alerts, err := uc.ContractedServicePaymentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a := alerts[0]
		if a.Status != entities.AlertStatusOverdue || a.Priority != entities.PriorityHigh {
			t.Fatalf("expected overdue/high, got %s/%s", a.Status, a.Priority)
		}
		if a.DaysUntilDue >= 0 {
			t.Fatalf("expected negative days until due, got %d", a.DaysUntilDue)
		}
	})
}

func TestPaymentAlertUseCase_Mutations(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("mark as paid stamps the clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, nil, nil, markers, fixedClock(ctrl, now))

		markers.EXPECT().SetPaid(gomock.Any(), "contracted_service_s1", now).Return(nil)

		if err := uc.MarkAsPaid(context.Background(), " contracted_service_s1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mark as paid is repeatable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, nil, nil, markers, fixedClock(ctrl, now))

		markers.EXPECT().SetPaid(gomock.Any(), "a1", now).Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			if err := uc.MarkAsPaid(context.Background(), "a1"); err != nil {
				t.Fatalf("unexpected error on call %d: %v", i+1, err)
			}
		}
	})

	t.Run("blank alert id rejected", func(t *testing.T) {
		uc := NewPaymentAlertUseCase(nil, nil, nil, nil, nil)
		if err := uc.MarkAsPaid(context.Background(), "   "); !errors.Is(err, ErrInvalidAlertID) {
			t.Fatalf("expected ErrInvalidAlertID, got %v", err)
		}
		if err := uc.MarkAsCancelled(context.Background(), ""); !errors.Is(err, ErrInvalidAlertID) {
			t.Fatalf("expected ErrInvalidAlertID, got %v", err)
		}
		if err := uc.SendReminder(context.Background(), ""); !errors.Is(err, ErrInvalidAlertID) {
			t.Fatalf("expected ErrInvalidAlertID, got %v", err)
		}
	})

	t.Run("marker write failure wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, nil, nil, markers, fixedClock(ctrl, now))

		markers.EXPECT().SetPaid(gomock.Any(), "a1", now).Return(errors.New("dynamo down"))

		err := uc.MarkAsPaid(context.Background(), "a1")
		if !errors.Is(err, ErrMarkerWriteFailed) {
			t.Fatalf("expected ErrMarkerWriteFailed, got %v", err)
		}
	})

	t.Run("send reminder increments through the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, nil, nil, markers, fixedClock(ctrl, now))

		markers.EXPECT().IncrementReminder(gomock.Any(), "a1", now).Return(nil)

		if err := uc.SendReminder(context.Background(), "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mark as cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		markers := mock_interfaces.NewMockIPaymentMarkerRepository(ctrl)
		uc := NewPaymentAlertUseCase(nil, nil, nil, markers, fixedClock(ctrl, now))

		markers.EXPECT().SetCancelled(gomock.Any(), "a1").Return(nil)

		if err := uc.MarkAsCancelled(context.Background(), "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
