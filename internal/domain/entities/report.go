package entities

import "time"

// ReportKind names one of the fixed tabular reports.

type ReportKind string

const (
	ReportClientPayments        ReportKind = "client_payments"
	ReportSubcontractorPayments ReportKind = "subcontractor_payments"
	ReportProjectCosts          ReportKind = "project_costs"
	ReportVehicleMaintenance    ReportKind = "vehicle_maintenance"
	ReportContractedServices    ReportKind = "contracted_services"
	ReportClientOverview        ReportKind = "client_overview"
	ReportExpenseBreakdown      ReportKind = "expense_breakdown"
	ReportServicePricing        ReportKind = "service_pricing"
	ReportAlertsSummary         ReportKind = "alerts_summary"
	ReportProjectCompletion     ReportKind = "project_completion"
	ReportCashFlow              ReportKind = "cash_flow"
	ReportEmployeeHours         ReportKind = "employee_hours"
)

// ReportKinds lists every supported kind, in presentation order.
var ReportKinds = []ReportKind{
	ReportClientPayments,
	ReportSubcontractorPayments,
	ReportProjectCosts,
	ReportVehicleMaintenance,
	ReportContractedServices,
	ReportClientOverview,
	ReportExpenseBreakdown,
	ReportServicePricing,
	ReportAlertsSummary,
	ReportProjectCompletion,
	ReportCashFlow,
	ReportEmployeeHours,
}

// Period is the caller-supplied date filter. Either bound may be absent, in
// which case containment is unconditional.
type Period struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Metric is one labeled summary number shown above a report table.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report is a derived tabular projection: a fixed column schema, string
// rows, and exactly two summary metrics.
type Report struct {
	Kind    ReportKind `json:"kind"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Metrics []Metric   `json:"metrics"`
}
