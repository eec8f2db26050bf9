package models

// Wire DTOs for the commerce REST API. Fields arrive loosely typed (monetary
// amounts and timestamps as text); the analytics normalizer converts them to
// the canonical types, rejecting malformed records.

// RawLineItem is one line item as decoded from the orders endpoint.
type RawLineItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
	TotalTax string `json:"total_tax"`
}

// RawAddress is the billing/shipping block of an order payload.
type RawAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Phone     string `json:"phone"`
}

// RawShippingLine is one shipping method entry of an order payload.
type RawShippingLine struct {
	MethodTitle string `json:"method_title"`
}

// RawOrder is one order as decoded from the orders endpoint.
type RawOrder struct {
	ID            int64             `json:"id"`
	Status        string            `json:"status"`
	Currency      string            `json:"currency"`
	Total         string            `json:"total"`
	DateCreated   string            `json:"date_created"`
	Billing       RawAddress        `json:"billing"`
	Shipping      RawAddress        `json:"shipping"`
	ShippingLines []RawShippingLine `json:"shipping_lines"`
	LineItems     []RawLineItem     `json:"line_items"`
}
