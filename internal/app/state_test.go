package app

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/services"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if s.GetReport() != nil {
		t.Error("report should be nil before first fetch")
	}
	if !s.Loading.Initial {
		t.Error("Initial loading should be true")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()

	s.SetLoading("orders", true)
	if !s.Loading.Orders {
		t.Error("Orders loading should be true")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("orders", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}
	if s.IsInitialLoading() {
		t.Error("IsInitialLoading should be false")
	}
}

func TestState_Report(t *testing.T) {
	s := NewState()

	report := &models.SalesReport{
		FetchedAt:    time.Now(),
		TotalRevenue: decimal.RequireFromString("35.50"),
		OrderCount:   2,
	}
	orders := []models.Order{{ID: 101}, {ID: 102}}

	s.SetReport(report, orders)

	got := s.GetReport()
	if got == nil {
		t.Fatal("GetReport returned nil")
	}
	if !got.TotalRevenue.Equal(report.TotalRevenue) {
		t.Errorf("TotalRevenue = %s, want 35.50", got.TotalRevenue)
	}
	if len(s.GetOrders()) != 2 {
		t.Errorf("GetOrders len = %d, want 2", len(s.GetOrders()))
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("lastUpdated should be set")
	}
}

func TestState_Catalog(t *testing.T) {
	s := NewState()

	s.SetCatalog(
		[]models.Product{{ID: 1, Name: "Widget"}},
		[]models.Customer{{ID: 1, Email: "a@test.com"}},
	)

	if len(s.GetProducts()) != 1 {
		t.Errorf("GetProducts len = %d, want 1", len(s.GetProducts()))
	}
	if len(s.GetCustomers()) != 1 {
		t.Errorf("GetCustomers len = %d, want 1", len(s.GetCustomers()))
	}
}

func TestState_Stats(t *testing.T) {
	s := NewState()

	if s.GetStats() != nil {
		t.Error("stats should be nil initially")
	}

	s.SetStats(services.StatsEvent{OrderCount: 5, ProductCount: 3})
	stats := s.GetStats()
	if stats == nil {
		t.Fatal("GetStats returned nil")
	}
	if stats.OrderCount != 5 {
		t.Errorf("OrderCount = %d, want 5", stats.OrderCount)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState()

	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 || notifs[0].ID != "active" {
		t.Errorf("expected only the active notification, got %v", notifs)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("Loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 || notifs[0].ID != LoadingNotificationID {
		t.Fatalf("expected loading notification, got %v", notifs)
	}

	// Setting again replaces, not duplicates
	s.SetLoadingNotification("Refreshing...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("expected a single loading notification, got %d", len(notifs))
	}
	if notifs[0].Message != "Refreshing..." {
		t.Errorf("Message = %s, want Refreshing...", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("loading notification should be cleared")
	}
}
