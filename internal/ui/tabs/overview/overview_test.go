package overview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/models"
)

func testReport() *models.SalesReport {
	return &models.SalesReport{
		FetchedAt:    time.Now(),
		TotalRevenue: decimal.RequireFromString("135.50"),
		OrderCount:   3,
		TopProducts: []models.ProductSales{
			{Name: "Widget", Quantity: 5},
			{Name: "Gadget", Quantity: 2},
		},
		DailySeries: []models.DailyRevenue{
			{Date: "2026-03-01", Total: decimal.RequireFromString("100.00")},
			{Date: "2026-03-02", Total: decimal.RequireFromString("35.50")},
		},
	}
}

func TestNew(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_View_Loading(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if view == "" {
		t.Error("View returned empty string during initial load")
	}
}

func TestModel_View_NoData(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "No sales data") {
		t.Error("View should show empty placeholder before first report")
	}
}

func TestModel_View_WithReport(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)
	state.SetReport(testReport(), nil)

	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "135.50") {
		t.Error("View should contain total revenue")
	}
	if !strings.Contains(view, "Widget") {
		t.Error("View should contain top product name")
	}
	if !strings.Contains(view, "2026-03-01") {
		t.Error("View should contain series date range")
	}
}

func TestModel_SetSize(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(100, 50)
}

func TestModel_Help(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}

func TestModel_KeyBindings(t *testing.T) {
	state := app.NewState()
	m := New(state)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
}
