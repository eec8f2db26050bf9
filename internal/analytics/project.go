package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/models"
)

// DefaultTopProducts is the ranking bound used when none is configured.
const DefaultTopProducts = 5

// TopProducts projects the product quantity map into a ranking sorted by
// quantity descending, ties broken by name ascending so the output is
// deterministic. The result is truncated to n entries; if fewer than n
// distinct products exist, all of them are returned.
func TopProducts(quantities map[string]int, n int) []models.ProductSales {
	if n <= 0 {
		n = DefaultTopProducts
	}

	ranking := make([]models.ProductSales, 0, len(quantities))
	for name, qty := range quantities {
		ranking = append(ranking, models.ProductSales{Name: name, Quantity: qty})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// DailySeries projects the daily revenue map into a series sorted ascending
// by date. Days without orders are absent, never emitted as zero entries, so
// charts skip them instead of dipping to zero.
func DailySeries(daily map[string]decimal.Decimal) []models.DailyRevenue {
	series := make([]models.DailyRevenue, 0, len(daily))
	for date, total := range daily {
		series = append(series, models.DailyRevenue{Date: date, Total: total})
	}

	// Keys share the 2006-01-02 layout, so lexical order is chronological.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// BuildReport runs the full pipeline on one fetched batch: normalize,
// aggregate, project. This is the single entry point the orders service calls
// once per successful fetch.
func BuildReport(raw []models.RawOrder, topN int, fetchedAt time.Time) (*models.SalesReport, []models.Order) {
	orders, skipped, warnings := NormalizeOrders(raw)
	totals := Aggregate(orders)

	report := &models.SalesReport{
		FetchedAt:    fetchedAt,
		TotalRevenue: totals.Revenue,
		OrderCount:   totals.OrderCount,
		TopProducts:  TopProducts(totals.ProductQuantities, topN),
		DailySeries:  DailySeries(totals.DailyRevenue),
		Skipped:      skipped,
		Warnings:     warnings,
	}
	return report, orders
}
