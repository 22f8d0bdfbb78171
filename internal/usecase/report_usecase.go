package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"subterra_admin/internal/domain/alerts"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase/interfaces"
)

var ErrUnknownReportKind = errors.New("unknown report kind")

// IReportUseCase produces the fixed tabular reports. Every report is a
// declarative projection over fresh entity snapshots and the derived alert
// lists; the only shared machinery is period filtering, keyed grouping and
// percentage arithmetic.

type IReportUseCase interface {
	Generate(ctx context.Context, kind entities.ReportKind, period entities.Period) (entities.Report, error)
}

type ReportUseCase struct {
	payments IPaymentAlertUseCase
	vehicles IVehicleAlertUseCase
	projects IProjectTrackingUseCase

	clients    interfaces.IClientRepository
	services   interfaces.IContractServiceRepository
	employees  interfaces.IEmployeeRepository
	financings interfaces.IFinancingRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	payments IPaymentAlertUseCase,
	vehicles IVehicleAlertUseCase,
	projects IProjectTrackingUseCase,
	clients interfaces.IClientRepository,
	services interfaces.IContractServiceRepository,
	employees interfaces.IEmployeeRepository,
	financings interfaces.IFinancingRepository,
) *ReportUseCase {
	return &ReportUseCase{
		payments:   payments,
		vehicles:   vehicles,
		projects:   projects,
		clients:    clients,
		services:   services,
		employees:  employees,
		financings: financings,
	}
}

func (u *ReportUseCase) Generate(ctx context.Context, kind entities.ReportKind, period entities.Period) (entities.Report, error) {
	switch kind {
	case entities.ReportClientPayments:
		return u.clientPayments(ctx, period)
	case entities.ReportSubcontractorPayments:
		return u.subcontractorPayments(ctx, period)
	case entities.ReportProjectCosts:
		return u.projectCosts(ctx, period)
	case entities.ReportVehicleMaintenance:
		return u.vehicleMaintenance(ctx, period)
	case entities.ReportContractedServices:
		return u.contractedServices(ctx, period)
	case entities.ReportClientOverview:
		return u.clientOverview(ctx, period)
	case entities.ReportExpenseBreakdown:
		return u.expenseBreakdown(ctx, period)
	case entities.ReportServicePricing:
		return u.servicePricing(ctx, period)
	case entities.ReportAlertsSummary:
		return u.alertsSummary(ctx, period)
	case entities.ReportProjectCompletion:
		return u.projectCompletion(ctx, period)
	case entities.ReportCashFlow:
		return u.cashFlow(ctx, period)
	case entities.ReportEmployeeHours:
		return u.employeeHours(ctx, period)
	default:
		return entities.Report{}, fmt.Errorf("%w: %q", ErrUnknownReportKind, kind)
	}
}

func (u *ReportUseCase) clientPayments(ctx context.Context, period entities.Period) (entities.Report, error) {
	list, err := u.payments.ClientPaymentAlerts(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	var rows [][]string
	var total, overdue float64
	for _, a := range list {
		if !alerts.WithinPeriod(a.DueDate, period.Start, period.End) {
			continue
		}
		total += a.Amount
		if a.Status == entities.AlertStatusOverdue {
			overdue += a.Amount
		}
		rows = append(rows, []string{
			a.ClientName, a.ServiceName, money(a.Amount), day(a.DueDate),
			string(a.Status), string(a.Priority), strconv.Itoa(a.ReminderCount),
		})
	}

	return entities.Report{
		Kind:    entities.ReportClientPayments,
		Title:   "Client Payments",
		Columns: []string{"Client", "Service", "Amount", "Due Date", "Status", "Priority", "Reminders"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Total billed", Value: money(total)},
			{Label: "Overdue amount", Value: money(overdue)},
		},
	}, nil
}

func (u *ReportUseCase) subcontractorPayments(ctx context.Context, period entities.Period) (entities.Report, error) {
	list, err := u.payments.SubcontractorPaymentAlerts(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	var rows [][]string
	var payable, paid float64
	for _, a := range list {
		if !alerts.WithinPeriod(a.DueDate, period.Start, period.End) {
			continue
		}
		if a.IsPaid {
			paid += a.Amount
		} else {
			payable += a.Amount
		}
		rows = append(rows, []string{
			a.SubcontractorName, a.ServiceName, money(a.Amount), day(a.DueDate),
			string(a.Status), string(a.Priority),
		})
	}

	return entities.Report{
		Kind:    entities.ReportSubcontractorPayments,
		Title:   "Subcontractor Payments",
		Columns: []string{"Subcontractor", "Service", "Amount", "Due Date", "Status", "Priority"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Outstanding payable", Value: money(payable)},
			{Label: "Paid", Value: money(paid)},
		},
	}, nil
}

func (u *ReportUseCase) projectCosts(ctx context.Context, period entities.Period) (entities.Report, error) {
	clients, services, err := u.clientServiceSnapshots(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	type agg struct {
		count             int
		estimated, actual float64
	}
	byClient := map[string]*agg{}
	for _, svc := range services {
		if svc.Status == entities.ServiceStatusCancelled || svc.StartDate == nil {
			continue
		}
		if !alerts.WithinPeriod(*svc.StartDate, period.Start, period.End) {
			continue
		}
		a := byClient[svc.ClientID]
		if a == nil {
			a = &agg{}
			byClient[svc.ClientID] = a
		}
		a.count++
		a.estimated += svc.Budget.EstimatedCost
		if svc.Budget.ActualCost != nil {
			a.actual += *svc.Budget.ActualCost
		}
	}

	var rows [][]string
	var totalEstimated, totalActual float64
	for _, client := range clients {
		a, ok := byClient[client.ID]
		if !ok {
			continue
		}
		totalEstimated += a.estimated
		totalActual += a.actual
		rows = append(rows, []string{
			client.Name, strconv.Itoa(a.count), money(a.estimated), money(a.actual),
			percent(marginPct(a.estimated, a.actual)),
		})
	}

	return entities.Report{
		Kind:    entities.ReportProjectCosts,
		Title:   "Project Costs",
		Columns: []string{"Client", "Services", "Estimated", "Actual", "Margin"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Total estimated", Value: money(totalEstimated)},
			{Label: "Total actual", Value: money(totalActual)},
		},
	}, nil
}

func (u *ReportUseCase) vehicleMaintenance(ctx context.Context, period entities.Period) (entities.Report, error) {
	list, err := u.vehicles.VehicleComplianceAlerts(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	var rows [][]string
	overdue := 0
	for _, a := range list {
		if !alerts.WithinPeriod(a.DueDate, period.Start, period.End) {
			continue
		}
		if a.Status == entities.AlertStatusOverdue {
			overdue++
		}
		rows = append(rows, []string{
			a.VehicleLabel, string(a.ComplianceItem), day(a.DueDate), string(a.Status), string(a.Priority),
		})
	}

	return entities.Report{
		Kind:    entities.ReportVehicleMaintenance,
		Title:   "Vehicle Maintenance & Compliance",
		Columns: []string{"Vehicle", "Item", "Due Date", "Status", "Priority"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Obligations", Value: strconv.Itoa(len(rows))},
			{Label: "Overdue", Value: strconv.Itoa(overdue)},
		},
	}, nil
}

func (u *ReportUseCase) contractedServices(ctx context.Context, period entities.Period) (entities.Report, error) {
	clients, services, err := u.clientServiceSnapshots(ctx)
	if err != nil {
		return entities.Report{}, err
	}
	clientName := clientNames(clients)

	var rows [][]string
	var totalValue float64
	completed := 0
	for _, svc := range services {
		if svc.StartDate == nil || !alerts.WithinPeriod(*svc.StartDate, period.Start, period.End) {
			continue
		}
		totalValue += svc.Budget.EstimatedCost
		if svc.Status == entities.ServiceStatusCompleted {
			completed++
		}
		rows = append(rows, []string{
			svc.Name, clientName[svc.ClientID], svc.Category, string(svc.Status),
			dayPtr(svc.StartDate), dayPtr(svc.EndDate), money(svc.Budget.EstimatedCost),
		})
	}

	return entities.Report{
		Kind:    entities.ReportContractedServices,
		Title:   "Contracted Services",
		Columns: []string{"Service", "Client", "Category", "Status", "Start", "End", "Estimated Cost"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Services", Value: strconv.Itoa(len(rows))},
			{Label: "Completed", Value: strconv.Itoa(completed)},
		},
	}, nil
}

func (u *ReportUseCase) clientOverview(ctx context.Context, period entities.Period) (entities.Report, error) {
	clients, services, err := u.clientServiceSnapshots(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	type agg struct {
		count int
		value float64
	}
	byClient := map[string]*agg{}
	for _, svc := range services {
		if svc.Status == entities.ServiceStatusCancelled {
			continue
		}
		if svc.StartDate != nil && !alerts.WithinPeriod(*svc.StartDate, period.Start, period.End) {
			continue
		}
		a := byClient[svc.ClientID]
		if a == nil {
			a = &agg{}
			byClient[svc.ClientID] = a
		}
		a.count++
		a.value += svc.Budget.EstimatedCost
	}

	var rows [][]string
	var totalValue float64
	for _, client := range clients {
		a := byClient[client.ID]
		if a == nil {
			a = &agg{}
		}
		totalValue += a.value
		rows = append(rows, []string{
			client.Name, client.City, strconv.Itoa(a.count), money(a.value), client.ProjectNumber,
		})
	}

	return entities.Report{
		Kind:    entities.ReportClientOverview,
		Title:   "Client Overview",
		Columns: []string{"Client", "City", "Services", "Contract Value", "Project"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Clients", Value: strconv.Itoa(len(rows))},
			{Label: "Total contract value", Value: money(totalValue)},
		},
	}, nil
}

func (u *ReportUseCase) expenseBreakdown(ctx context.Context, period entities.Period) (entities.Report, error) {
	financings, err := u.financings.GetAll(ctx)
	if err != nil {
		return entities.Report{}, fmt.Errorf("%w: loading financings: %v", ErrAlertDataUnavailable, err)
	}

	type agg struct {
		count              int
		principal, monthly float64
	}
	byCategory := map[string]*agg{}
	for _, f := range financings {
		if !alerts.WithinPeriod(f.StartDate, period.Start, period.End) {
			continue
		}
		cat := f.Category
		if cat == "" {
			cat = "uncategorized"
		}
		a := byCategory[cat]
		if a == nil {
			a = &agg{}
			byCategory[cat] = a
		}
		a.count++
		a.principal += f.Principal
		a.monthly += f.MonthlyPayment
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var rows [][]string
	var totalMonthly, totalPrincipal float64
	for _, cat := range categories {
		a := byCategory[cat]
		totalMonthly += a.monthly
		totalPrincipal += a.principal
		rows = append(rows, []string{cat, strconv.Itoa(a.count), money(a.principal), money(a.monthly)})
	}

	return entities.Report{
		Kind:    entities.ReportExpenseBreakdown,
		Title:   "Expense Breakdown",
		Columns: []string{"Category", "Lines", "Principal", "Monthly Payment"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Monthly obligations", Value: money(totalMonthly)},
			{Label: "Total principal", Value: money(totalPrincipal)},
		},
	}, nil
}

func (u *ReportUseCase) servicePricing(ctx context.Context, period entities.Period) (entities.Report, error) {
	services, err := u.services.GetAll(ctx)
	if err != nil {
		return entities.Report{}, fmt.Errorf("%w: loading services: %v", ErrAlertDataUnavailable, err)
	}

	type agg struct {
		count             int
		estimated, actual float64
		actualCount       int
	}
	byCategory := map[string]*agg{}
	var overallTotal float64
	overallCount := 0
	for _, svc := range services {
		if svc.Status == entities.ServiceStatusCancelled {
			continue
		}
		if svc.StartDate != nil && !alerts.WithinPeriod(*svc.StartDate, period.Start, period.End) {
			continue
		}
		cat := svc.Category
		if cat == "" {
			cat = "uncategorized"
		}
		a := byCategory[cat]
		if a == nil {
			a = &agg{}
			byCategory[cat] = a
		}
		a.count++
		a.estimated += svc.Budget.EstimatedCost
		if svc.Budget.ActualCost != nil {
			a.actual += *svc.Budget.ActualCost
			a.actualCount++
		}
		overallTotal += svc.Budget.EstimatedCost
		overallCount++
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var rows [][]string
	for _, cat := range categories {
		a := byCategory[cat]
		avgEstimated := a.estimated / float64(a.count)
		avgActual := 0.0
		if a.actualCount > 0 {
			avgActual = a.actual / float64(a.actualCount)
		}
		rows = append(rows, []string{cat, strconv.Itoa(a.count), money(avgEstimated), money(avgActual)})
	}

	avgOverall := 0.0
	if overallCount > 0 {
		avgOverall = overallTotal / float64(overallCount)
	}

	return entities.Report{
		Kind:    entities.ReportServicePricing,
		Title:   "Service Pricing",
		Columns: []string{"Category", "Services", "Avg Estimated", "Avg Actual"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Categories", Value: strconv.Itoa(len(rows))},
			{Label: "Avg service price", Value: money(avgOverall)},
		},
	}, nil
}

func (u *ReportUseCase) alertsSummary(ctx context.Context, period entities.Period) (entities.Report, error) {
	domains := []struct {
		name string
		load func(context.Context) ([]entities.Alert, error)
	}{
		{"Client payments", u.payments.ClientPaymentAlerts},
		{"Subcontractor payments", u.payments.SubcontractorPaymentAlerts},
		{"Contracted services", u.payments.ContractedServicePaymentAlerts},
		{"Vehicle compliance", u.vehicles.VehicleComplianceAlerts},
	}

	var rows [][]string
	total, high := 0, 0
	for _, d := range domains {
		list, err := d.load(ctx)
		if err != nil {
			return entities.Report{}, err
		}
		counts := map[entities.Priority]int{}
		n := 0
		for _, a := range list {
			if !alerts.WithinPeriod(a.DueDate, period.Start, period.End) {
				continue
			}
			counts[a.Priority]++
			n++
		}
		total += n
		high += counts[entities.PriorityHigh]
		rows = append(rows, []string{
			d.name, strconv.Itoa(n),
			strconv.Itoa(counts[entities.PriorityHigh]),
			strconv.Itoa(counts[entities.PriorityMedium]),
			strconv.Itoa(counts[entities.PriorityLow]),
		})
	}

	return entities.Report{
		Kind:    entities.ReportAlertsSummary,
		Title:   "Alerts Summary",
		Columns: []string{"Domain", "Total", "High", "Medium", "Low"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Total alerts", Value: strconv.Itoa(total)},
			{Label: "High priority", Value: strconv.Itoa(high)},
		},
	}, nil
}

func (u *ReportUseCase) projectCompletion(ctx context.Context, period entities.Period) (entities.Report, error) {
	list, err := u.projects.ProjectTracking(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	var rows [][]string
	completed := 0
	for _, p := range list {
		if !alerts.WithinPeriod(p.EndDate, period.Start, period.End) {
			continue
		}
		if p.Status == entities.ProjectStatusCompleted {
			completed++
		}
		rows = append(rows, []string{
			p.ClientName, p.ProjectNumber, percent(p.ActualProgress), percent(p.ExpectedProgress),
			string(p.Status), strconv.Itoa(p.DaysRemaining),
		})
	}

	return entities.Report{
		Kind:    entities.ReportProjectCompletion,
		Title:   "Project Completion",
		Columns: []string{"Client", "Project", "Progress", "Expected", "Status", "Days Remaining"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Projects", Value: strconv.Itoa(len(rows))},
			{Label: "Completed", Value: strconv.Itoa(completed)},
		},
	}, nil
}

func (u *ReportUseCase) cashFlow(ctx context.Context, period entities.Period) (entities.Report, error) {
	clientAlerts, err := u.payments.ClientPaymentAlerts(ctx)
	if err != nil {
		return entities.Report{}, err
	}
	subAlerts, err := u.payments.SubcontractorPaymentAlerts(ctx)
	if err != nil {
		return entities.Report{}, err
	}
	financings, err := u.financings.GetAll(ctx)
	if err != nil {
		return entities.Report{}, fmt.Errorf("%w: loading financings: %v", ErrAlertDataUnavailable, err)
	}

	var inflows float64
	for _, a := range clientAlerts {
		if a.Status == entities.AlertStatusCancelled {
			continue
		}
		if alerts.WithinPeriod(a.DueDate, period.Start, period.End) {
			inflows += a.Amount
		}
	}

	var subPayables float64
	for _, a := range subAlerts {
		if alerts.WithinPeriod(a.DueDate, period.Start, period.End) {
			subPayables += a.Amount
		}
	}

	var financingMonthly float64
	for _, f := range financings {
		financingMonthly += f.MonthlyPayment
	}

	net := inflows - subPayables - financingMonthly
	rows := [][]string{
		{"Client receivables", money(inflows)},
		{"Subcontractor payables", money(-subPayables)},
		{"Financing payments", money(-financingMonthly)},
		{"Net", money(net)},
	}

	return entities.Report{
		Kind:    entities.ReportCashFlow,
		Title:   "Cash Flow",
		Columns: []string{"Line", "Amount"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Inflows", Value: money(inflows)},
			{Label: "Net", Value: money(net)},
		},
	}, nil
}

func (u *ReportUseCase) employeeHours(ctx context.Context, period entities.Period) (entities.Report, error) {
	employees, err := u.employees.GetAll(ctx)
	if err != nil {
		return entities.Report{}, fmt.Errorf("%w: loading employees: %v", ErrAlertDataUnavailable, err)
	}

	var rows [][]string
	var weeklyCost float64
	for _, e := range employees {
		if !e.Active {
			continue
		}
		if !alerts.WithinPeriod(e.HireDate, period.Start, period.End) {
			continue
		}
		cost := e.WeeklyHours * e.HourlyRate
		weeklyCost += cost
		rows = append(rows, []string{
			e.Name, e.Role, formatHours(e.WeeklyHours), money(e.HourlyRate), money(cost),
		})
	}

	return entities.Report{
		Kind:    entities.ReportEmployeeHours,
		Title:   "Employee Hours",
		Columns: []string{"Employee", "Role", "Weekly Hours", "Hourly Rate", "Weekly Cost"},
		Rows:    rows,
		Metrics: []entities.Metric{
			{Label: "Employees", Value: strconv.Itoa(len(rows))},
			{Label: "Weekly payroll", Value: money(weeklyCost)},
		},
	}, nil
}

func (u *ReportUseCase) clientServiceSnapshots(ctx context.Context) ([]entities.Client, []entities.ContractService, error) {
	clients, err := u.clients.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: loading clients: %v", ErrAlertDataUnavailable, err)
	}
	services, err := u.services.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: loading services: %v", ErrAlertDataUnavailable, err)
	}
	return clients, services, nil
}

func clientNames(clients []entities.Client) map[string]string {
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names
}

func marginPct(estimated, actual float64) float64 {
	if estimated == 0 {
		return 0
	}
	return (estimated - actual) / estimated * 100
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}

func dayPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return day(*t)
}
