package interfaces

import (
	"context"
	"time"

	"subterra_admin/internal/domain/entities"
)

// IPaymentMarkerRepository abstracts the marker key-value store. All writes
// are field-merge upserts (last writer wins, untouched fields survive); Get
// returns the zero-value marker on a miss so an alert with no recorded
// action derives as unpaid with zero reminders.
type IPaymentMarkerRepository interface {
	Get(ctx context.Context, alertID string) (entities.PaymentMarker, error)
	SetPaid(ctx context.Context, alertID string, paidDate time.Time) error
	SetCancelled(ctx context.Context, alertID string) error
	IncrementReminder(ctx context.Context, alertID string, at time.Time) error
}
