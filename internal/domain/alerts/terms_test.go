package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPaymentTermsDays(t *testing.T) {
	cases := []struct {
		cost float64
		want int
	}{
		{250000, 60},
		{100000, 60},
		{99999, 45},
		{50000, 45},
		{49999, 30},
		{20000, 30},
		{19999, 15},
		{5000, 15},
		{4999, 7},
		{0, 7},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DefaultPaymentTermsDays(tc.cost), "cost %.0f", tc.cost)
	}
}
