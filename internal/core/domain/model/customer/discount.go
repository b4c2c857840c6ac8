package customer

import (
	"math"
	"sort"
)

// Tier grants Percent off the gross bill once a customer has placed at least
// MinOrders orders this month.
type Tier struct {
	MinOrders int
	Percent   float64
}

// DefaultTiers are the registered-customer brackets: 5% for the first orders
// of the month, 10% from the fifth, 15% from the tenth.
func DefaultTiers() []Tier {
	return []Tier{
		{MinOrders: 0, Percent: 5},
		{MinOrders: 5, Percent: 10},
		{MinOrders: 10, Percent: 15},
	}
}

// DiscountPolicy computes the discount rate for a customer kind.
type DiscountPolicy interface {
	Rate(ordersThisMonth int) float64
}

// TieredDiscount is a monotonic step function over the monthly order count.
type TieredDiscount struct {
	tiers []Tier
}

// NewTieredDiscount sorts the tiers by MinOrders. Percentages are kept as given,
// so callers that want a monotonic policy pass non-decreasing percentages.
func NewTieredDiscount(tiers []Tier) TieredDiscount {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinOrders < sorted[j].MinOrders
	})
	return TieredDiscount{tiers: sorted}
}

func (d TieredDiscount) Rate(ordersThisMonth int) float64 {
	rate := 0.0
	for _, tier := range d.tiers {
		if ordersThisMonth >= tier.MinOrders {
			rate = tier.Percent / 100
		}
	}
	return rate
}

type noDiscount struct{}

func (noDiscount) Rate(int) float64 {
	return 0
}

// Policies maps every customer kind to its discount policy.
type Policies map[Kind]DiscountPolicy

// DefaultPolicies returns the tiered policy for registered customers and no
// discount for guests.
func DefaultPolicies() Policies {
	return Policies{
		Registered: NewTieredDiscount(DefaultTiers()),
		Guest:      noDiscount{},
	}
}

// CalculateDiscount returns the amount deducted from grossBill for c, rounded
// to two decimals. Unknown kinds get no discount.
func (p Policies) CalculateDiscount(c *Customer, grossBill float64) float64 {
	if c == nil || grossBill <= 0 {
		return 0
	}

	policy, ok := p[c.Kind()]
	if !ok {
		return 0
	}

	return roundCents(grossBill * policy.Rate(c.OrdersThisMonth()))
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
