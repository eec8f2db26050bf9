package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSales is one entry of the top-product ranking.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DailyRevenue is one point of the chronological revenue series.
// Date is a calendar date key in 2006-01-02 form, never a timestamp.
type DailyRevenue struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// SkippedOrder records one raw order that failed normalization.
type SkippedOrder struct {
	OrderID int64
	Reason  error
}

// ItemWarning records one line item that was dropped without failing its order.
type ItemWarning struct {
	OrderID int64
	Index   int
	Reason  string
}

// SalesReport is the full derived output of one aggregation run. It is built
// fresh from every fetch and never mutated afterwards; display surfaces read
// it, they never feed back into it.
type SalesReport struct {
	FetchedAt    time.Time
	TotalRevenue decimal.Decimal
	OrderCount   int
	TopProducts  []ProductSales
	DailySeries  []DailyRevenue
	Skipped      []SkippedOrder
	Warnings     []ItemWarning
}

// SkippedCount returns the number of raw orders excluded from the aggregates.
func (r *SalesReport) SkippedCount() int {
	return len(r.Skipped)
}
