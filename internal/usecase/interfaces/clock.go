package interfaces

import "time"

// Clock is the single "today" source for every derivation. Injecting it keeps
// the calculators deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
