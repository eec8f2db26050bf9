package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is one persisted fetch result, journaled so the info tab can show
// revenue history across runs.
type Snapshot struct {
	ID           int64
	FetchedAt    time.Time
	TotalRevenue decimal.Decimal
	OrderCount   int
	SkippedCount int
	Source       string
}
