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

type reportFixture struct {
	clients    *mock_interfaces.MockIClientRepository
	services   *mock_interfaces.MockIContractServiceRepository
	subs       *mock_interfaces.MockISubcontractorRepository
	vehicles   *mock_interfaces.MockIVehicleRepository
	employees  *mock_interfaces.MockIEmployeeRepository
	financings *mock_interfaces.MockIFinancingRepository
	markers    *mock_interfaces.MockIPaymentMarkerRepository
	uc         *ReportUseCase
}

func newReportFixture(ctrl *gomock.Controller, now time.Time) *reportFixture {
	f := &reportFixture{
		clients:    mock_interfaces.NewMockIClientRepository(ctrl),
		services:   mock_interfaces.NewMockIContractServiceRepository(ctrl),
		subs:       mock_interfaces.NewMockISubcontractorRepository(ctrl),
		vehicles:   mock_interfaces.NewMockIVehicleRepository(ctrl),
		employees:  mock_interfaces.NewMockIEmployeeRepository(ctrl),
		financings: mock_interfaces.NewMockIFinancingRepository(ctrl),
		markers:    mock_interfaces.NewMockIPaymentMarkerRepository(ctrl),
	}
	clock := fixedClock(ctrl, now)
	payments := NewPaymentAlertUseCase(f.clients, f.services, f.subs, f.markers, clock)
	vehicleAlerts := NewVehicleAlertUseCase(f.vehicles, clock)
	projects := NewProjectTrackingUseCase(f.clients, f.services, clock)
	f.uc = NewReportUseCase(payments, vehicleAlerts, projects, f.clients, f.services, f.employees, f.financings)
	return f
}

func TestReportUseCase_Generate_UnknownKind(t *testing.T) {
	uc := NewReportUseCase(nil, nil, nil, nil, nil, nil, nil)
	_, err := uc.Generate(context.Background(), "quarterly_synergy", entities.Period{})
	if !errors.Is(err, ErrUnknownReportKind) {
		t.Fatalf("expected ErrUnknownReportKind, got %v", err)
	}
}

func TestReportUseCase_EmployeeHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := newReportFixture(ctrl, now)

	f.employees.EXPECT().GetAll(gomock.Any()).Return([]entities.Employee{
		{ID: "e1", Name: "Jordan", Role: "Operator", HourlyRate: 40, WeeklyHours: 45, Active: true,
			HireDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "e2", Name: "Sam", Role: "Laborer", HourlyRate: 25, WeeklyHours: 40, Active: false,
			HireDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	report, err := f.uc.Generate(context.Background(), entities.ReportEmployeeHours, entities.Period{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("expected inactive employee filtered, got %d rows", len(report.Rows))
	}
	row := report.Rows[0]
	if row[0] != "Jordan" || row[2] != "45.0" || row[4] != "1800.00" {
		t.Fatalf("unexpected row: %v", row)
	}
	if report.Metrics[1].Value != "1800.00" {
		t.Fatalf("unexpected payroll metric: %+v", report.Metrics)
	}
}

func TestReportUseCase_ExpenseBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := newReportFixture(ctrl, now)

	f.financings.EXPECT().GetAll(gomock.Any()).Return([]entities.Financing{
		{ID: "f1", Lender: "First Bank", Category: "equipment", Principal: 90000, MonthlyPayment: 1500,
			StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "f2", Lender: "First Bank", Category: "equipment", Principal: 30000, MonthlyPayment: 700,
			StartDate: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "f3", Lender: "Dealer", Principal: 45000, MonthlyPayment: 900,
			StartDate: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	report, err := f.uc.Generate(context.Background(), entities.ReportExpenseBreakdown, entities.Period{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(report.Rows))
	}
	// categories sorted, blank category bucketed
	if report.Rows[0][0] != "equipment" || report.Rows[1][0] != "uncategorized" {
		t.Fatalf("unexpected category order: %v", report.Rows)
	}
	if report.Rows[0][1] != "2" || report.Rows[0][3] != "2200.00" {
		t.Fatalf("unexpected equipment aggregate: %v", report.Rows[0])
	}
	if report.Metrics[0].Value != "3100.00" {
		t.Fatalf("unexpected monthly metric: %+v", report.Metrics)
	}
}

func TestReportUseCase_ClientPayments_PeriodFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := newReportFixture(ctrl, now)

	f.clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
		{ID: "c1", Name: "Acme"},
	}, nil)
	f.services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
		{ID: "s1", ClientID: "c1", Name: "Trenching", Status: entities.ServiceStatusCompleted,
			EndDate: datePtr(2026, time.March, 1),
			Budget:  entities.Budget{EstimatedCost: 3000, Currency: "USD"}},
		{ID: "s2", ClientID: "c1", Name: "Boring", Status: entities.ServiceStatusCompleted,
			EndDate: datePtr(2026, time.June, 1),
			Budget:  entities.Budget{EstimatedCost: 9000, Currency: "USD"}},
	}, nil)
	f.markers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.PaymentMarker{}, nil).Times(2)

	// only the March due date falls inside the window
	period := entities.Period{Start: datePtr(2026, time.February, 1), End: datePtr(2026, time.March, 31)}
	report, err := f.uc.Generate(context.Background(), entities.ReportClientPayments, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 row after period filter, got %d", len(report.Rows))
	}
	if report.Rows[0][1] != "Trenching" {
		t.Fatalf("unexpected row: %v", report.Rows[0])
	}
	if report.Metrics[0].Value != "3000.00" {
		t.Fatalf("unexpected total metric: %+v", report.Metrics)
	}
	if report.Metrics[1].Value != "3000.00" {
		t.Fatalf("expected the overdue row counted, got %+v", report.Metrics)
	}
}

func TestReportUseCase_AlertsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := newReportFixture(ctrl, now)

	f.clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
		{ID: "c1", Name: "Acme", ProjectDeadline: datePtr(2026, time.March, 12)},
	}, nil)
	f.services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
		{ID: "s1", ClientID: "c1", SubcontractorID: "sub1", Name: "Trenching",
			Status:  entities.ServiceStatusInProgress,
			EndDate: datePtr(2026, time.April, 20),
			Budget:  entities.Budget{EstimatedCost: 1000, Currency: "USD"}},
	}, nil).Times(3)
	f.subs.EXPECT().GetAll(gomock.Any()).Return([]entities.Subcontractor{
		{ID: "sub1", CompanyName: "Dig Deep LLC", PaymentTerms: "30"},
	}, nil)
	f.vehicles.EXPECT().GetAll(gomock.Any()).Return([]entities.Vehicle{
		{ID: "v1", Make: "Ford", Model: "F-550", NextMaintenanceDate: datePtr(2026, time.March, 1)},
	}, nil)
	f.markers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.PaymentMarker{}, nil).AnyTimes()

	report, err := f.uc.Generate(context.Background(), entities.ReportAlertsSummary, entities.Period{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Rows) != 4 {
		t.Fatalf("expected one row per domain, got %d", len(report.Rows))
	}
	if report.Metrics[0].Value != "4" {
		t.Fatalf("expected 4 total alerts, got %+v", report.Metrics)
	}
	// client payment due in 2 days and overdue maintenance are both high
	if report.Metrics[1].Value != "2" {
		t.Fatalf("expected 2 high priority alerts, got %+v", report.Metrics)
	}
}

func TestReportUseCase_CashFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := newReportFixture(ctrl, now)

	f.clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
		{ID: "c1", Name: "Acme", ProjectDeadline: datePtr(2026, time.April, 1)},
	}, nil)
	f.services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
		{ID: "s1", ClientID: "c1", SubcontractorID: "sub1", Name: "Trenching",
			Status:  entities.ServiceStatusInProgress,
			EndDate: datePtr(2026, time.March, 1),
			Budget:  entities.Budget{EstimatedCost: 10000, Currency: "USD"}},
	}, nil).Times(2)
	f.subs.EXPECT().GetAll(gomock.Any()).Return([]entities.Subcontractor{
		{ID: "sub1", CompanyName: "Dig Deep LLC", PaymentTerms: "30"},
	}, nil)
	f.financings.EXPECT().GetAll(gomock.Any()).Return([]entities.Financing{
		{ID: "f1", Lender: "First Bank", Principal: 90000, MonthlyPayment: 1500,
			StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	f.markers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.PaymentMarker{}, nil).AnyTimes()

	report, err := f.uc.Generate(context.Background(), entities.ReportCashFlow, entities.Period{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Rows) != 4 {
		t.Fatalf("expected 4 fixed lines, got %d", len(report.Rows))
	}
	// 10000 in, 10000 out to the subcontractor, 1500 financing
	if report.Rows[3][0] != "Net" || report.Rows[3][1] != "-1500.00" {
		t.Fatalf("unexpected net line: %v", report.Rows[3])
	}
}

func TestReportUseCase_ProjectCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := newReportFixture(ctrl, now)

	actual := 8000.0
	f.clients.EXPECT().GetAll(gomock.Any()).Return([]entities.Client{
		{ID: "c1", Name: "Acme"},
	}, nil)
	f.services.EXPECT().GetAll(gomock.Any()).Return([]entities.ContractService{
		{ID: "s1", ClientID: "c1", Status: entities.ServiceStatusCompleted,
			StartDate: datePtr(2026, time.January, 5),
			Budget:    entities.Budget{EstimatedCost: 10000, ActualCost: &actual, Currency: "USD"}},
		{ID: "s2", ClientID: "c1", Status: entities.ServiceStatusCancelled,
			StartDate: datePtr(2026, time.January, 5),
			Budget:    entities.Budget{EstimatedCost: 99999, Currency: "USD"}},
	}, nil)

	report, err := f.uc.Generate(context.Background(), entities.ReportProjectCosts, entities.Period{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(report.Rows))
	}
	row := report.Rows[0]
	if row[0] != "Acme" || row[1] != "1" || row[2] != "10000.00" || row[3] != "8000.00" || row[4] != "20.0%" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestReportUseCase_DataFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	f := newReportFixture(ctrl, now)

	f.employees.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("dynamo down"))

	_, err := f.uc.Generate(context.Background(), entities.ReportEmployeeHours, entities.Period{})
	if !errors.Is(err, ErrAlertDataUnavailable) {
		t.Fatalf("expected ErrAlertDataUnavailable, got %v", err)
	}
}
