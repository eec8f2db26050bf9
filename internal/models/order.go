// Package models defines data structures and domain types.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as reported by the commerce API.
const (
	StatusCompleted  = "completed"
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lists the statuses the orders view can filter on, in cycle order.
var OrderStatuses = []string{"", StatusCompleted, StatusPending, StatusProcessing, StatusCancelled}

// LineItem is one product line within an order.
type LineItem struct {
	ID       int64
	Name     string
	Quantity int
	Total    decimal.Decimal
	TotalTax decimal.Decimal
}

// Address holds the billing or shipping details attached to an order.
type Address struct {
	FirstName string
	LastName  string
	Address1  string
	City      string
	Postcode  string
	Phone     string
}

// Order is the canonical, validated form of one commerce transaction.
// Instances are produced by the analytics normalizer and never mutated.
type Order struct {
	ID             int64
	Status         string
	Currency       string
	Total          decimal.Decimal
	CreatedAt      time.Time
	Billing        Address
	Shipping       Address
	ShippingMethod string
	LineItems      []LineItem
}

// CustomerName returns the billing name used for display and search.
func (o *Order) CustomerName() string {
	return strings.TrimSpace(o.Billing.FirstName + " " + o.Billing.LastName)
}

// MatchesCustomer reports whether the billing name contains the query,
// case-insensitively. An empty query matches everything.
func (o *Order) MatchesCustomer(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.CustomerName()), strings.ToLower(query))
}
