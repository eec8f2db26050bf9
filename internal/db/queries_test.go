package db

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/models"
)

func testReport(fetchedAt time.Time) *models.SalesReport {
	return &models.SalesReport{
		FetchedAt:    fetchedAt,
		TotalRevenue: decimal.RequireFromString("35.50"),
		OrderCount:   2,
		DailySeries: []models.DailyRevenue{
			{Date: "2024-01-01", Total: decimal.RequireFromString("15.50")},
			{Date: "2024-01-02", Total: decimal.RequireFromString("20.00")},
		},
		Skipped: []models.SkippedOrder{{OrderID: 9}},
	}
}

func TestInsertAndRecentSnapshots(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	fetchedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	id, err := db.InsertSnapshot(testReport(fetchedAt), "api")
	if err != nil {
		t.Fatalf("InsertSnapshot failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected non-zero snapshot id")
	}

	snapshots, err := db.RecentSnapshots(10)
	if err != nil {
		t.Fatalf("RecentSnapshots failed: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("Expected 1 snapshot, got %d", len(snapshots))
	}

	s := snapshots[0]
	if !s.TotalRevenue.Equal(decimal.RequireFromString("35.50")) {
		t.Errorf("TotalRevenue = %s, want 35.50", s.TotalRevenue)
	}
	if s.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", s.OrderCount)
	}
	if s.SkippedCount != 1 {
		t.Errorf("SkippedCount = %d, want 1", s.SkippedCount)
	}
	if s.Source != "api" {
		t.Errorf("Source = %q, want api", s.Source)
	}
	if !s.FetchedAt.Equal(fetchedAt) {
		t.Errorf("FetchedAt = %v, want %v", s.FetchedAt, fetchedAt)
	}
}

func TestRecentSnapshotsOrder(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := db.InsertSnapshot(testReport(base.Add(time.Duration(i)*time.Hour)), "api"); err != nil {
			t.Fatalf("InsertSnapshot failed: %v", err)
		}
	}

	snapshots, err := db.RecentSnapshots(2)
	if err != nil {
		t.Fatalf("RecentSnapshots failed: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(snapshots))
	}
	if !snapshots[0].FetchedAt.After(snapshots[1].FetchedAt) {
		t.Errorf("Expected newest first, got %v then %v", snapshots[0].FetchedAt, snapshots[1].FetchedAt)
	}
}

func TestSnapshotDailyRevenue(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	id, err := db.InsertSnapshot(testReport(time.Now()), "file")
	if err != nil {
		t.Fatalf("InsertSnapshot failed: %v", err)
	}

	series, err := db.SnapshotDailyRevenue(id)
	if err != nil {
		t.Fatalf("SnapshotDailyRevenue failed: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("Expected 2 daily points, got %d", len(series))
	}
	if series[0].Date != "2024-01-01" || series[1].Date != "2024-01-02" {
		t.Errorf("Dates out of order: %s, %s", series[0].Date, series[1].Date)
	}
	if !series[1].Total.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("series[1].Total = %s, want 20.00", series[1].Total)
	}
}

func TestPruneSnapshots(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if _, err := db.InsertSnapshot(testReport(base.Add(time.Duration(i)*time.Hour)), "api"); err != nil {
			t.Fatalf("InsertSnapshot failed: %v", err)
		}
	}

	deleted, err := db.PruneSnapshots(2)
	if err != nil {
		t.Fatalf("PruneSnapshots failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("Deleted = %d, want 3", deleted)
	}

	snapshots, err := db.RecentSnapshots(10)
	if err != nil {
		t.Fatalf("RecentSnapshots failed: %v", err)
	}
	if len(snapshots) != 2 {
		t.Errorf("Expected 2 remaining snapshots, got %d", len(snapshots))
	}
}
