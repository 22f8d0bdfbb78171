package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, 2, 1), date(2024, 2, 1), 0},
		{"one day apart", date(2024, 2, 2), date(2024, 2, 1), 1},
		{"negative", date(2024, 2, 1), date(2024, 2, 2), -1},
		{"month boundary", date(2024, 2, 1), date(2024, 1, 1), 31},
		{"leap february", date(2024, 3, 1), date(2024, 2, 1), 29},
		{
			// Sub-day drift must not produce off-by-one results.
			"time of day ignored",
			time.Date(2024, 2, 2, 23, 59, 0, 0, time.UTC),
			time.Date(2024, 2, 1, 0, 1, 0, 0, time.UTC),
			1,
		},
		{
			"zone-local times normalize by date components",
			time.Date(2024, 2, 2, 1, 0, 0, 0, time.FixedZone("X", -5*3600)),
			time.Date(2024, 2, 1, 22, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysBetween(tc.a, tc.b))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := date(2024, 2, 3)
	assert.Equal(t, 7, DaysUntil(now, date(2024, 2, 10)))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -3, DaysUntil(now, date(2024, 1, 31)))
}

func TestWithinPeriod(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 1, 31)

	t.Run("absent bounds are unconditional", func(t *testing.T) {
		assert.True(t, WithinPeriod(date(1999, 1, 1), nil, nil))
		assert.True(t, WithinPeriod(date(1999, 1, 1), &start, nil))
		assert.True(t, WithinPeriod(date(1999, 1, 1), nil, &end))
	})

	t.Run("inclusive containment", func(t *testing.T) {
		assert.True(t, WithinPeriod(start, &start, &end))
		assert.True(t, WithinPeriod(end, &start, &end))
		assert.True(t, WithinPeriod(date(2024, 1, 15), &start, &end))
		assert.False(t, WithinPeriod(date(2023, 12, 31), &start, &end))
		assert.False(t, WithinPeriod(date(2024, 2, 1), &start, &end))
	})

	t.Run("time of day does not leak past a bound", func(t *testing.T) {
		lateOnEnd := time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)
		assert.True(t, WithinPeriod(lateOnEnd, &start, &end))
	})
}
