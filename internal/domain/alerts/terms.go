package alerts

// costTier maps a contracted-service budget to default payment terms: larger
// invoices get longer terms.
type costTier struct {
	minCost float64
	days    int
}

var costTiers = []costTier{
	{minCost: 100000, days: 60},
	{minCost: 50000, days: 45},
	{minCost: 20000, days: 30},
	{minCost: 5000, days: 15},
}

// defaultTermsDays applies below the lowest tier.
const defaultTermsDays = 7

// DefaultPaymentTermsDays returns the cost-tiered default payment terms for
// a contracted-service payment whose subcontract carries no explicit terms.
func DefaultPaymentTermsDays(estimatedCost float64) int {
	for _, tier := range costTiers {
		if estimatedCost >= tier.minCost {
			return tier.days
		}
	}
	return defaultTermsDays
}
