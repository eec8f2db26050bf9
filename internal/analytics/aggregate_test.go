package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/models"
)

func order(id int64, total, date string, items ...models.LineItem) models.Order {
	createdAt, err := time.Parse("2006-01-02T15:04:05", date)
	if err != nil {
		panic(err)
	}
	return models.Order{
		ID:        id,
		Total:     decimal.RequireFromString(total),
		CreatedAt: createdAt,
		LineItems: items,
	}
}

func fixtureOrders() []models.Order {
	return []models.Order{
		order(1, "10.00", "2024-01-01T08:15:00", models.LineItem{Name: "A", Quantity: 2}),
		order(2, "5.50", "2024-01-01T21:45:00", models.LineItem{Name: "B", Quantity: 1}),
		order(3, "20.00", "2024-01-02T12:00:00", models.LineItem{Name: "A", Quantity: 3}),
	}
}

func TestAggregateScenario(t *testing.T) {
	totals := Aggregate(fixtureOrders())

	if totals.Revenue.String() != "35.5" {
		t.Errorf("Revenue = %s, want 35.5", totals.Revenue)
	}
	if totals.OrderCount != 3 {
		t.Errorf("OrderCount = %d, want 3", totals.OrderCount)
	}
	if totals.ProductQuantities["A"] != 5 || totals.ProductQuantities["B"] != 1 {
		t.Errorf("ProductQuantities = %v, want A:5 B:1", totals.ProductQuantities)
	}
	if len(totals.ProductQuantities) != 2 {
		t.Errorf("unexpected product keys: %v", totals.ProductQuantities)
	}

	if got := totals.DailyRevenue["2024-01-01"]; got.String() != "15.5" {
		t.Errorf("DailyRevenue[2024-01-01] = %s, want 15.5", got)
	}
	if got := totals.DailyRevenue["2024-01-02"]; got.String() != "20" {
		t.Errorf("DailyRevenue[2024-01-02] = %s, want 20", got)
	}
	if len(totals.DailyRevenue) != 2 {
		t.Errorf("unexpected daily keys: %v", totals.DailyRevenue)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	totals := Aggregate(nil)

	if !totals.Revenue.IsZero() {
		t.Errorf("Revenue = %s, want 0", totals.Revenue)
	}
	if totals.OrderCount != 0 {
		t.Errorf("OrderCount = %d, want 0", totals.OrderCount)
	}
	if len(totals.ProductQuantities) != 0 || len(totals.DailyRevenue) != 0 {
		t.Error("empty input must yield empty maps, not nil entries")
	}
}

// TestAggregateCommutativity verifies that all three aggregates are
// independent of input order.
func TestAggregateCommutativity(t *testing.T) {
	base := fixtureOrders()
	want := Aggregate(base)

	rng := rand.New(rand.NewSource(1))
	for perm := 0; perm < 20; perm++ {
		shuffled := make([]models.Order, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := Aggregate(shuffled)

		if !got.Revenue.Equal(want.Revenue) {
			t.Fatalf("permutation %d: revenue %s != %s", perm, got.Revenue, want.Revenue)
		}
		for name, qty := range want.ProductQuantities {
			if got.ProductQuantities[name] != qty {
				t.Fatalf("permutation %d: product %q %d != %d", perm, name, got.ProductQuantities[name], qty)
			}
		}
		for day, total := range want.DailyRevenue {
			if !got.DailyRevenue[day].Equal(total) {
				t.Fatalf("permutation %d: day %q %s != %s", perm, day, got.DailyRevenue[day], total)
			}
		}
	}
}

// TestAggregateExactSummation checks the decimal sums are exact where float64
// accumulation would drift.
func TestAggregateExactSummation(t *testing.T) {
	orders := make([]models.Order, 0, 1000)
	for i := 0; i < 1000; i++ {
		orders = append(orders, order(int64(i), "0.10", "2024-01-01T00:00:00"))
	}

	totals := Aggregate(orders)
	if totals.Revenue.String() != "100" {
		t.Errorf("Revenue = %s, want exactly 100", totals.Revenue)
	}
	if got := totals.DailyRevenue["2024-01-01"]; got.String() != "100" {
		t.Errorf("daily total = %s, want exactly 100", got)
	}
}

func TestAggregateCaseSensitiveProductKeys(t *testing.T) {
	orders := []models.Order{
		order(1, "1.00", "2024-01-01T00:00:00",
			models.LineItem{Name: "widget", Quantity: 1},
			models.LineItem{Name: "Widget", Quantity: 2},
		),
	}

	totals := Aggregate(orders)
	if totals.ProductQuantities["widget"] != 1 || totals.ProductQuantities["Widget"] != 2 {
		t.Errorf("differently-cased names must stay distinct: %v", totals.ProductQuantities)
	}
}

func TestAggregateSameDayDifferentTimes(t *testing.T) {
	orders := []models.Order{
		order(1, "1.00", "2024-06-01T00:00:01"),
		order(2, "2.00", "2024-06-01T23:59:59"),
	}

	totals := Aggregate(orders)
	if len(totals.DailyRevenue) != 1 {
		t.Fatalf("orders on the same calendar day must share a bucket: %v", totals.DailyRevenue)
	}
	if got := totals.DailyRevenue["2024-06-01"]; got.String() != "3" {
		t.Errorf("bucket = %s, want 3", got)
	}
}
