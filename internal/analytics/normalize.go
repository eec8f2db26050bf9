// Package analytics implements the order aggregation pipeline: raw records
// are normalized into canonical orders, summed into aggregate maps, and
// projected into the ordered sequences the dashboard renders.
package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/models"
)

var (
	// ErrMalformedAmount is returned when an order's total is not a decimal number.
	ErrMalformedAmount = errors.New("malformed monetary amount")

	// ErrMalformedTimestamp is returned when an order's creation date cannot be parsed.
	ErrMalformedTimestamp = errors.New("malformed creation timestamp")
)

// Timestamp layouts accepted from the API. WooCommerce reports store-local
// time without an offset; some deployments emit full RFC3339.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeOrder converts one raw order into its canonical form. Monetary
// amounts and timestamps must parse; line items with an empty product name
// are dropped and reported as warnings rather than failing the order.
func NormalizeOrder(raw *models.RawOrder) (models.Order, []models.ItemWarning, error) {
	total, err := decimal.NewFromString(strings.TrimSpace(raw.Total))
	if err != nil {
		return models.Order{}, nil, fmt.Errorf("order %d total %q: %w", raw.ID, raw.Total, ErrMalformedAmount)
	}

	createdAt, err := parseTimestamp(raw.DateCreated)
	if err != nil {
		return models.Order{}, nil, fmt.Errorf("order %d date %q: %w", raw.ID, raw.DateCreated, ErrMalformedTimestamp)
	}

	order := models.Order{
		ID:        raw.ID,
		Status:    raw.Status,
		Currency:  raw.Currency,
		Total:     total,
		CreatedAt: createdAt,
		Billing:   normalizeAddress(raw.Billing),
		Shipping:  normalizeAddress(raw.Shipping),
		LineItems: make([]models.LineItem, 0, len(raw.LineItems)),
	}
	if len(raw.ShippingLines) > 0 {
		order.ShippingMethod = raw.ShippingLines[0].MethodTitle
	}

	var warnings []models.ItemWarning
	for i, item := range raw.LineItems {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			warnings = append(warnings, models.ItemWarning{
				OrderID: raw.ID,
				Index:   i,
				Reason:  "line item has no product name",
			})
			continue
		}
		order.LineItems = append(order.LineItems, models.LineItem{
			ID:       item.ID,
			Name:     name,
			Quantity: item.Quantity,
			Total:    parseAmountOrZero(item.Total),
			TotalTax: parseAmountOrZero(item.TotalTax),
		})
	}

	return order, warnings, nil
}

// NormalizeOrders converts a batch of raw orders. Records that fail to parse
// are collected in skipped and do not abort the rest of the batch.
func NormalizeOrders(raw []models.RawOrder) (orders []models.Order, skipped []models.SkippedOrder, warnings []models.ItemWarning) {
	orders = make([]models.Order, 0, len(raw))
	for i := range raw {
		order, w, err := NormalizeOrder(&raw[i])
		if err != nil {
			skipped = append(skipped, models.SkippedOrder{OrderID: raw[i].ID, Reason: err})
			continue
		}
		orders = append(orders, order)
		warnings = append(warnings, w...)
	}
	return orders, skipped, warnings
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized layout")
}

// parseAmountOrZero parses per-item amounts. These are informational display
// fields; the order-level total is the authoritative figure and is validated
// strictly by NormalizeOrder.
func parseAmountOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func normalizeAddress(raw models.RawAddress) models.Address {
	return models.Address{
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Address1:  raw.Address1,
		City:      raw.City,
		Postcode:  raw.Postcode,
		Phone:     raw.Phone,
	}
}
