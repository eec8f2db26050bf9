// Package customers provides the customer browser tab for the storedash TUI.
package customers

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// keyMap defines the key bindings specific to the customers tab.
type keyMap struct {
	Filter key.Binding
	Escape key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
	}
}

// Model represents the customers tab state.
type Model struct {
	state       *app.State
	table       table.Model
	searchInput textinput.Model
	spinner     components.LoadingSpinner
	keys        keyMap
	width       int
	height      int

	searching    bool
	query        string
	loadedCount  int
	filteredRows int
}

// New creates a new customers model.
func New(state *app.State) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Name or email..."
	searchInput.CharLimit = 60
	searchInput.Width = 30

	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Name", Width: 26},
		{Title: "Email", Width: 32},
		{Title: "Role", Width: 12},
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
		spinner:     components.NewSpinner("Fetching customers..."),
		keys:        defaultKeyMap(),
	}
}

// Init initializes the customers tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages for the customers tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	if m.searching {
		return m.updateSearch(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Filter):
			m.searching = true
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Escape):
			if m.query != "" {
				m.query = ""
				m.updateTableData()
			}

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.CatalogLoadedMsg:
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

// syncData rebuilds the table when the customer list has changed.
func (m *Model) syncData() {
	customers := m.state.GetCustomers()
	if len(customers) == m.loadedCount {
		return
	}
	m.loadedCount = len(customers)
	m.updateTableData()
}

// updateTableData rebuilds the table rows from the current search query.
func (m *Model) updateTableData() {
	customers := m.state.GetCustomers()

	rows := make([]table.Row, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		if !c.Matches(m.query) {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", c.ID),
			c.Name(),
			c.Email,
			c.Role,
		})
	}

	m.filteredRows = len(rows)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// SetSize sets the available size for the customers tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-8, 3))

	emailWidth := width - 54
	if emailWidth < 20 {
		emailWidth = 20
	}
	if emailWidth > 40 {
		emailWidth = 40
	}

	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Name", Width: 26},
		{Title: "Email", Width: emailWidth},
		{Title: "Role", Width: 12},
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
	return []key.Binding{m.keys.Filter, m.keys.Escape}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Filter, m.keys.Escape},
	}
}
