package alerts

import "subterra_admin/internal/domain/entities"

// Priority thresholds per domain. Client and contracted-service payments
// escalate on amount independently of date; subcontractor payments are
// date-only with tighter windows.
const (
	paymentHighWithinDays   = 7
	paymentMediumWithinDays = 30
	paymentHighAmount       = 5000
	paymentMediumAmount     = 2000

	subcontractorHighWithinDays   = 3
	subcontractorMediumWithinDays = 7

	complianceHighWithinDays   = 7
	complianceMediumWithinDays = 30

	projectHighWithinDays   = 7
	projectMediumWithinDays = 30
)

// ClientPaymentPriority derives priority for client payment alerts.
// Terminal states are never urgent; overdue/due-today always are.
func ClientPaymentPriority(status entities.AlertStatus, daysUntilDue int, amount float64) entities.Priority {
	return standardPaymentPriority(status, daysUntilDue, amount)
}

// ContractedServicePaymentPriority derives priority for contracted-service
// payment alerts. Thresholds are identical to client payments.
func ContractedServicePaymentPriority(status entities.AlertStatus, daysUntilDue int, amount float64) entities.Priority {
	return standardPaymentPriority(status, daysUntilDue, amount)
}

func standardPaymentPriority(status entities.AlertStatus, daysUntilDue int, amount float64) entities.Priority {
	switch status {
	case entities.AlertStatusPaid, entities.AlertStatusCancelled:
		return entities.PriorityLow
	case entities.AlertStatusOverdue, entities.AlertStatusDueToday:
		return entities.PriorityHigh
	}
	if daysUntilDue <= paymentHighWithinDays || amount >= paymentHighAmount {
		return entities.PriorityHigh
	}
	if daysUntilDue <= paymentMediumWithinDays || amount >= paymentMediumAmount {
		return entities.PriorityMedium
	}
	return entities.PriorityLow
}

// SubcontractorPaymentPriority derives priority for subcontractor payment
// alerts; no amount escalation.
func SubcontractorPaymentPriority(status entities.AlertStatus, daysUntilDue int) entities.Priority {
	switch status {
	case entities.AlertStatusPaid, entities.AlertStatusCancelled:
		return entities.PriorityLow
	case entities.AlertStatusOverdue, entities.AlertStatusDueToday:
		return entities.PriorityHigh
	}
	if daysUntilDue <= subcontractorHighWithinDays {
		return entities.PriorityHigh
	}
	if daysUntilDue <= subcontractorMediumWithinDays {
		return entities.PriorityMedium
	}
	return entities.PriorityLow
}

// CompliancePriority derives priority for vehicle compliance alerts from due
// date proximity alone; being already overdue is folded into high here
// rather than forming a separate status tier.
func CompliancePriority(daysUntilDue int) entities.Priority {
	if daysUntilDue < 0 || daysUntilDue <= complianceHighWithinDays {
		return entities.PriorityHigh
	}
	if daysUntilDue <= complianceMediumWithinDays {
		return entities.PriorityMedium
	}
	return entities.PriorityLow
}

// ProjectPriority derives project urgency from end-date proximity alone; it
// intentionally does not consult the tracking status.
func ProjectPriority(daysRemaining int) entities.Priority {
	if daysRemaining < 0 || daysRemaining <= projectHighWithinDays {
		return entities.PriorityHigh
	}
	if daysRemaining <= projectMediumWithinDays {
		return entities.PriorityMedium
	}
	return entities.PriorityLow
}
