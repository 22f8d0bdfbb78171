// Package alerts holds the pure status/priority/due-date calculators behind
// the alert engine. Nothing here performs I/O or reads a clock; callers pass
// "now" in, which keeps every rule independently testable.
package alerts

import "time"

// startOfDay drops the time-of-day component. Dates are rebuilt in UTC so
// that day arithmetic is immune to DST transitions in the source locations.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed whole-day difference a-b at midnight
// precision. DaysBetween(today, due) > 0 means due is already in the past.
func DaysBetween(a, b time.Time) int {
	diff := startOfDay(a).Sub(startOfDay(b))
	return int(diff / (24 * time.Hour))
}

// DaysUntil returns how many days remain from now until due; negative once
// the due date has passed.
func DaysUntil(now, due time.Time) int {
	return DaysBetween(due, now)
}

// WithinPeriod reports whether date falls inside [start, end] inclusive, at
// midnight precision. An absent bound makes the containment unconditional.
func WithinPeriod(date time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	d := startOfDay(date)
	if d.Before(startOfDay(*start)) {
		return false
	}
	if d.After(startOfDay(*end)) {
		return false
	}
	return true
}
