package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/mzerara/storedash/internal/models"
)

func rawOrder(id int64, total, date string, items ...models.RawLineItem) models.RawOrder {
	return models.RawOrder{
		ID:          id,
		Status:      "completed",
		Currency:    "DZD",
		Total:       total,
		DateCreated: date,
		LineItems:   items,
	}
}

func TestNormalizeOrder(t *testing.T) {
	raw := models.RawOrder{
		ID:          42,
		Status:      "processing",
		Currency:    "DZD",
		Total:       "129.99",
		DateCreated: "2024-01-15T09:30:00",
		Billing: models.RawAddress{
			FirstName: "Ala", LastName: "Ahmed",
			Address1: "12 Rue Didouche", City: "Algiers", Postcode: "16000", Phone: "+213123",
		},
		ShippingLines: []models.RawShippingLine{{MethodTitle: "Flat rate"}},
		LineItems: []models.RawLineItem{
			{ID: 1, Name: "Widget", Quantity: 2, Total: "100.00", TotalTax: "10.00"},
			{ID: 2, Name: "Gadget", Quantity: 1, Total: "29.99"},
		},
	}

	order, warnings, err := NormalizeOrder(&raw)
	if err != nil {
		t.Fatalf("NormalizeOrder() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	if order.ID != 42 || order.Status != "processing" {
		t.Errorf("order identity fields wrong: %+v", order)
	}
	if order.Total.String() != "129.99" {
		t.Errorf("Total = %s, want 129.99", order.Total)
	}
	want := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	if !order.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", order.CreatedAt, want)
	}
	if order.ShippingMethod != "Flat rate" {
		t.Errorf("ShippingMethod = %q", order.ShippingMethod)
	}
	if len(order.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.LineItems))
	}
	if order.LineItems[0].TotalTax.String() != "10" {
		t.Errorf("line item tax = %s", order.LineItems[0].TotalTax)
	}
	if order.CustomerName() != "Ala Ahmed" {
		t.Errorf("CustomerName() = %q", order.CustomerName())
	}
}

func TestNormalizeOrderMalformedAmount(t *testing.T) {
	raw := rawOrder(7, "not-a-number", "2024-01-01T00:00:00")

	_, _, err := NormalizeOrder(&raw)
	if !errors.Is(err, ErrMalformedAmount) {
		t.Errorf("expected ErrMalformedAmount, got %v", err)
	}
}

func TestNormalizeOrderMalformedTimestamp(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"Empty", ""},
		{"Garbage", "yesterday"},
		{"PartialDate", "2024-13-45T99:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawOrder(7, "10.00", tt.date)
			_, _, err := NormalizeOrder(&raw)
			if !errors.Is(err, ErrMalformedTimestamp) {
				t.Errorf("expected ErrMalformedTimestamp, got %v", err)
			}
		})
	}
}

func TestNormalizeOrderTimestampLayouts(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"RFC3339", "2024-03-01T10:00:00Z"},
		{"StoreLocal", "2024-03-01T10:00:00"},
		{"SpaceSeparated", "2024-03-01 10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawOrder(1, "5.00", tt.date)
			order, _, err := NormalizeOrder(&raw)
			if err != nil {
				t.Fatalf("NormalizeOrder() error = %v", err)
			}
			if got := DateKey(order.CreatedAt); got != "2024-03-01" {
				t.Errorf("DateKey = %q, want 2024-03-01", got)
			}
		})
	}
}

func TestNormalizeOrderDropsEmptyLineItem(t *testing.T) {
	raw := rawOrder(9, "50.00", "2024-02-02T12:00:00",
		models.RawLineItem{Name: "Kept", Quantity: 1},
		models.RawLineItem{Name: "   ", Quantity: 3},
		models.RawLineItem{Name: "", Quantity: 2},
	)

	order, warnings, err := NormalizeOrder(&raw)
	if err != nil {
		t.Fatalf("one bad line item must not fail the order: %v", err)
	}
	if len(order.LineItems) != 1 || order.LineItems[0].Name != "Kept" {
		t.Errorf("LineItems = %+v, want only Kept", order.LineItems)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].OrderID != 9 || warnings[0].Index != 1 {
		t.Errorf("warning = %+v", warnings[0])
	}
}

func TestNormalizeOrdersPartialFailureIsolation(t *testing.T) {
	batch := []models.RawOrder{
		rawOrder(1, "10.00", "2024-01-01T08:00:00", models.RawLineItem{Name: "A", Quantity: 2}),
		rawOrder(2, "oops", "2024-01-01T09:00:00", models.RawLineItem{Name: "B", Quantity: 1}),
		rawOrder(3, "20.00", "2024-01-02T10:00:00", models.RawLineItem{Name: "A", Quantity: 3}),
	}

	orders, skipped, warnings := NormalizeOrders(batch)

	if len(orders) != 2 {
		t.Fatalf("expected 2 surviving orders, got %d", len(orders))
	}
	if len(skipped) != 1 || skipped[0].OrderID != 2 {
		t.Fatalf("skipped = %+v, want order 2", skipped)
	}
	if !errors.Is(skipped[0].Reason, ErrMalformedAmount) {
		t.Errorf("skip reason = %v", skipped[0].Reason)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	totals := Aggregate(orders)
	if totals.Revenue.String() != "30" {
		t.Errorf("aggregates must cover the valid orders only: revenue = %s", totals.Revenue)
	}
}
