package products

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/models"
)

func intPtr(n int) *int { return &n }

func testProducts() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Drill",
			Price:         "89.00",
			StockQuantity: intPtr(12),
			Categories:    []models.Category{{ID: 1, Name: "Tools"}},
		},
		{
			ID:            2,
			Name:          "Phone Case",
			Price:         "15.00",
			StockQuantity: intPtr(0),
			Categories:    []models.Category{{ID: 2, Name: "Electronics"}},
		},
		{
			ID:    3,
			Name:  "Gift Card",
			Price: "25.00",
		},
	}
}

func newTestModel(t *testing.T) (*Model, *app.State) {
	t.Helper()

	state := app.NewState()
	state.SetLoading("initial", false)
	state.SetCatalog(testProducts(), nil)

	m := New(state)
	m.SetSize(110, 30)
	return m, state
}

func TestView_ListsProducts(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Drill") {
		t.Error("View should list products")
	}
	if !strings.Contains(view, "3 products") {
		t.Error("View should show product count")
	}
}

func TestView_EmptyCatalog(t *testing.T) {
	state := app.NewState()
	state.SetLoading("initial", false)

	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "No catalog data") {
		t.Error("View should show catalog placeholder")
	}
}

func TestSyncData_CollectsCategories(t *testing.T) {
	m, _ := newTestModel(t)
	m.View()

	want := []string{"Electronics", "Tools"}
	if len(m.categories) != len(want) {
		t.Fatalf("categories = %v, want %v", m.categories, want)
	}
	for i, name := range want {
		if m.categories[i] != name {
			t.Errorf("categories[%d] = %q, want %q", i, m.categories[i], name)
		}
	}
}

func TestCategoryFilter(t *testing.T) {
	m, _ := newTestModel(t)
	m.View()

	// open the filter panel and toggle the first category (Electronics)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if !m.filterFocus {
		t.Fatal("expected filter focus after c")
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !m.selected["Electronics"] {
		t.Fatal("expected Electronics selected")
	}
	if m.filteredRows != 1 {
		t.Errorf("filteredRows = %d, want 1", m.filteredRows)
	}

	// esc clears filters
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.selected) != 0 {
		t.Error("esc should clear filters")
	}
	if m.filteredRows != 3 {
		t.Errorf("filteredRows = %d, want 3 after clear", m.filteredRows)
	}
}

func TestStockLabel(t *testing.T) {
	tests := []struct {
		name     string
		quantity *int
		want     string
	}{
		{"untracked", nil, "stock not tracked"},
		{"out", intPtr(0), "out of stock"},
		{"low", intPtr(3), "low stock: 3 left"},
		{"in", intPtr(40), "in stock: 40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stockLabel(tt.quantity); got != tt.want {
				t.Errorf("stockLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	m, _ := newTestModel(t)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
