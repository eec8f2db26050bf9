package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzerara/storedash/internal/models"
)

func TestNewModel(t *testing.T) {
	model := NewModel(nil)
	if model == nil {
		t.Fatal("NewModel returned nil")
	}
	if model.state == nil {
		t.Error("State should be initialized")
	}
	if model.activeTab != TabOverview {
		t.Error("Default tab should be Overview")
	}
	if len(model.tabs) != 5 {
		t.Errorf("Should have 5 tab placeholders, got %d", len(model.tabs))
	}
}

func TestModel_Init(t *testing.T) {
	model := NewModel(nil)
	cmd := model.Init()
	if cmd == nil {
		t.Error("Init returned nil command")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	model := NewModel(nil)
	msg := tea.WindowSizeMsg{Width: 100, Height: 50}

	newModel, _ := model.Update(msg)

	m, ok := newModel.(*Model)
	if !ok {
		t.Fatal("Update returned wrong model type")
	}

	if m.width != 100 {
		t.Errorf("Width = %d, want 100", m.width)
	}
	if m.height != 50 {
		t.Errorf("Height = %d, want 50", m.height)
	}
	if !m.ready {
		t.Error("Model should be ready after WindowSizeMsg")
	}
}

func TestModel_Update_TabSwitch(t *testing.T) {
	model := NewModel(nil)
	model.ready = true
	model.width = 100
	model.height = 50

	msg := TabSwitchMsg{Tab: TabOrders}
	newModel, _ := model.Update(msg)
	m := newModel.(*Model)

	if m.activeTab != TabOrders {
		t.Errorf("ActiveTab = %v, want Orders", m.activeTab)
	}

	// Number keys switch tabs directly
	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if model.activeTab != TabProducts {
		t.Errorf("ActiveTab = %v, want Products after key 3", model.activeTab)
	}
}

func TestModel_Update_Tick(t *testing.T) {
	model := NewModel(nil)
	msg := TickMsg{Time: time.Now()}

	_, cmd := model.Update(msg)
	if cmd == nil {
		t.Error("TickMsg should return a command (next tick)")
	}
}

func TestModel_Update_ReportLoaded(t *testing.T) {
	model := NewModel(nil)

	report := &models.SalesReport{FetchedAt: time.Now(), OrderCount: 1}
	model.Update(ReportLoadedMsg{Report: report, Orders: []models.Order{{ID: 1}}})

	if model.state.GetReport() == nil {
		t.Fatal("report should be stored in state")
	}
	if model.state.IsInitialLoading() {
		t.Error("initial loading should end after first report")
	}
}

func TestModel_Update_Quit(t *testing.T) {
	model := NewModel(nil)

	cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestModel_Update_ToggleHelp(t *testing.T) {
	model := NewModel(nil)

	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !model.showHelp {
		t.Error("? should show help")
	}

	model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	if model.showHelp {
		t.Error("esc should hide help")
	}
}

func TestModel_RefreshKeyEmitsRefreshMsg(t *testing.T) {
	model := NewModel(nil)

	cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("refresh key should produce a command")
	}

	raw := cmd()
	msg, ok := raw.(RefreshMsg)
	if !ok {
		t.Fatalf("refresh key produced %T, want RefreshMsg", raw)
	}
	if msg.Resource != "all" {
		t.Errorf("Resource = %q, want \"all\"", msg.Resource)
	}
}

func TestModel_View_NotReady(t *testing.T) {
	model := NewModel(nil)

	view := model.View()
	if !strings.Contains(view, "Loading") {
		t.Error("View should show loading before first WindowSizeMsg")
	}
}

func TestTabID_String(t *testing.T) {
	tests := []struct {
		id   TabID
		want string
	}{
		{TabOverview, "Overview"},
		{TabOrders, "Orders"},
		{TabProducts, "Products"},
		{TabCustomers, "Customers"},
		{TabInfo, "Info"},
		{TabID(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("TabID(%d).String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}
