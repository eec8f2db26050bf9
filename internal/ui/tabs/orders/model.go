// Package orders provides the order browser tab for the storedash TUI.
package orders

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// keyMap defines the key bindings specific to the orders tab.
type keyMap struct {
	Enter  key.Binding
	Filter key.Binding
	Status key.Binding
	Escape key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "order details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search customer"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// Model represents the orders tab state.
type Model struct {
	state       *app.State
	table       table.Model
	searchInput textinput.Model
	spinner     components.LoadingSpinner
	keys        keyMap
	width       int
	height      int

	searching   bool
	query       string
	statusIndex int
	dataAt      time.Time

	selected *models.Order
	filtered []models.Order
}

// New creates a new orders model.
func New(state *app.State) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Customer name..."
	searchInput.CharLimit = 60
	searchInput.Width = 30

	columns := []table.Column{
		{Title: "Order", Width: 8},
		{Title: "Date", Width: 12},
		{Title: "Customer", Width: 24},
		{Title: "Status", Width: 12},
		{Title: "Total", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state:       state,
		table:       t,
		searchInput: searchInput,
		spinner:     components.NewSpinner("Fetching orders..."),
		keys:        defaultKeyMap(),
	}
}

// Init initializes the orders tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages for the orders tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	if m.searching {
		return m.updateSearch(msg)
	}

	if m.selected != nil {
		return m.updateDetail(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Enter):
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.filtered) {
				// Copy the order: filtered's backing array is reused on the
				// next rebuild, and a refresh can land while the detail is open.
				o := m.filtered[idx]
				m.selected = &o
			}

		case key.Matches(msg, m.keys.Filter):
			m.searching = true
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Status):
			m.statusIndex = (m.statusIndex + 1) % len(models.OrderStatuses)
			m.updateTableData()

		case key.Matches(msg, m.keys.Escape):
			if m.query != "" || m.statusIndex != 0 {
				m.query = ""
				m.statusIndex = 0
				m.updateTableData()
			}

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.ReportLoadedMsg:
		m.syncData()

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateSearch(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.searching = false
			m.query = m.searchInput.Value()
			m.searchInput.Blur()
			m.updateTableData()
			return m, nil

		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) updateDetail(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			m.selected = nil
			return m, nil
		}
	}
	return m, nil
}

// syncData rebuilds the table when a newer report has arrived since the
// last rebuild. The tab may be inactive when a refresh lands, so View
// calls this as well.
func (m *Model) syncData() {
	if lu := m.state.GetLastUpdated(); !lu.Equal(m.dataAt) {
		m.dataAt = lu
		m.updateTableData()
	}
}

// statusFilter returns the currently selected status, empty for all.
func (m *Model) statusFilter() string {
	return models.OrderStatuses[m.statusIndex]
}

// updateTableData rebuilds the table rows from the current filters.
func (m *Model) updateTableData() {
	orders := m.state.GetOrders()
	status := m.statusFilter()

	m.filtered = m.filtered[:0]
	for i := range orders {
		o := &orders[i]
		if status != "" && o.Status != status {
			continue
		}
		if !o.MatchesCustomer(m.query) {
			continue
		}
		m.filtered = append(m.filtered, *o)
	}

	rows := make([]table.Row, 0, len(m.filtered))
	for i := range m.filtered {
		o := &m.filtered[i]
		name := o.CustomerName()
		if name == "" {
			name = "—"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", o.ID),
			o.CreatedAt.Format("2006-01-02"),
			name,
			o.Status,
			"$" + o.Total.StringFixed(2),
		})
	}

	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// SetSize sets the available size for the orders tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-8, 3))

	customerWidth := width - 52
	if customerWidth < 16 {
		customerWidth = 16
	}
	if customerWidth > 36 {
		customerWidth = 36
	}

	columns := []table.Column{
		{Title: "Order", Width: 8},
		{Title: "Date", Width: 12},
		{Title: "Customer", Width: customerWidth},
		{Title: "Status", Width: 12},
		{Title: "Total", Width: 12},
	}
	m.table.SetColumns(columns)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	if m.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			m.keys.Escape,
		}
	}
	if m.selected != nil {
		return []key.Binding{m.keys.Escape}
	}
	return []key.Binding{
		m.keys.Enter,
		m.keys.Filter,
		m.keys.Status,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Enter, m.keys.Escape},
		{m.keys.Filter, m.keys.Status},
	}
}
