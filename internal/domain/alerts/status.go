package alerts

import (
	"time"

	"subterra_admin/internal/domain/entities"
)

// ComputePaymentStatus derives the status of a payment alert from its due
// date and the manual marker flags. Manual flags short-circuit date math:
// a cancelled alert stays cancelled and a paid alert stays paid no matter
// how far in the past or future the due date lies.
//
// All three payment domains share the unified four-state model, including
// due_today. The source system folded due_today into pending for client
// payments only; that asymmetry carried no documented intent, so the model
// is unified here (see DESIGN.md).
func ComputePaymentStatus(now, due time.Time, isPaid, isCancelled bool) entities.AlertStatus {
	if isCancelled {
		return entities.AlertStatusCancelled
	}
	if isPaid {
		return entities.AlertStatusPaid
	}
	switch d := DaysBetween(now, due); {
	case d > 0:
		return entities.AlertStatusOverdue
	case d == 0:
		return entities.AlertStatusDueToday
	default:
		return entities.AlertStatusPending
	}
}

// ComputeComplianceStatus derives a vehicle compliance alert's status. Only
// strictly-past due dates are overdue; a same-day obligation is still
// pending. Completion is an explicit operator action, never derived.
func ComputeComplianceStatus(now, due time.Time) entities.AlertStatus {
	if DaysBetween(now, due) > 0 {
		return entities.AlertStatusOverdue
	}
	return entities.AlertStatusPending
}

// atRiskMargin is how far (in percentage points) actual progress may trail
// the schedule before a project is flagged at risk.
const atRiskMargin = 15.0

// ExpectedProgress returns the schedule-implied completion percentage of a
// project at "now", clamped to [0,100].
func ExpectedProgress(now, start, end time.Time) float64 {
	total := DaysBetween(end, start)
	if total <= 0 {
		return 100
	}
	elapsed := DaysBetween(now, start)
	pct := float64(elapsed) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ComputeProjectStatus derives a project's tracking status from its schedule
// and the operator-maintained actual progress percentage.
func ComputeProjectStatus(now, start, end time.Time, actualProgress float64) entities.ProjectStatus {
	if actualProgress >= 100 {
		return entities.ProjectStatusCompleted
	}
	// Degenerate schedule (end on or before start) cannot be on track.
	if DaysBetween(end, start) <= 0 {
		return entities.ProjectStatusDelayed
	}
	if DaysBetween(now, end) > 0 {
		return entities.ProjectStatusDelayed
	}
	if actualProgress < ExpectedProgress(now, start, end)-atRiskMargin {
		return entities.ProjectStatusAtRisk
	}
	return entities.ProjectStatusOnTrack
}
