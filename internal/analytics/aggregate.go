package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/models"
)

// DateKeyLayout is the calendar-date bucket key for daily revenue. Orders are
// bucketed on the timestamp exactly as parsed (the API reports store-local
// time); no timezone conversion is applied anywhere in the pipeline.
const DateKeyLayout = "2006-01-02"

// Totals holds the three aggregate views derived from one batch of orders.
// All three are commutative sums: the result is identical for any permutation
// of the input.
type Totals struct {
	Revenue           decimal.Decimal
	OrderCount        int
	ProductQuantities map[string]int
	DailyRevenue      map[string]decimal.Decimal
}

// Aggregate computes total revenue, per-product quantity totals, and per-day
// revenue totals for a batch of normalized orders. An empty batch yields zero
// revenue and empty maps.
func Aggregate(orders []models.Order) Totals {
	t := Totals{
		Revenue:           decimal.Zero,
		OrderCount:        len(orders),
		ProductQuantities: make(map[string]int),
		DailyRevenue:      make(map[string]decimal.Decimal),
	}

	for i := range orders {
		order := &orders[i]

		t.Revenue = t.Revenue.Add(order.Total)

		day := DateKey(order.CreatedAt)
		t.DailyRevenue[day] = t.DailyRevenue[day].Add(order.Total)

		for _, item := range order.LineItems {
			// Product keys are exact, case-sensitive names; near-duplicate
			// names are distinct products.
			t.ProductQuantities[item.Name] += item.Quantity
		}
	}

	return t
}

// DateKey returns the calendar-date bucket key for a timestamp.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
