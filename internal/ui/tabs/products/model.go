// Package products provides the catalog browser tab for the storedash TUI.
package products

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// keyMap defines the key bindings specific to the products tab.
type keyMap struct {
	Focus  key.Binding
	Toggle key.Binding
	Clear  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "categories"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filters"),
		),
	}
}

// Model represents the products tab state.
type Model struct {
	state   *app.State
	table   table.Model
	spinner components.LoadingSpinner
	keys    keyMap
	width   int
	height  int

	categories   []string
	selected     map[string]bool
	catIndex     int
	filterFocus  bool
	loadedCount  int
	filteredRows int
}

// New creates a new products model.
func New(state *app.State) *Model {
	columns := []table.Column{
		{Title: "Product", Width: 30},
		{Title: "Price", Width: 10},
		{Title: "Stock", Width: 10},
		{Title: "Categories", Width: 24},
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
		state:    state,
		table:    t,
		spinner:  components.NewSpinner("Fetching catalog..."),
		keys:     defaultKeyMap(),
		selected: make(map[string]bool),
	}
}

// Init initializes the products tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages for the products tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Focus):
			m.filterFocus = !m.filterFocus

		case key.Matches(msg, m.keys.Clear):
			if len(m.selected) > 0 {
				m.selected = make(map[string]bool)
				m.updateTableData()
			}
			m.filterFocus = false

		case m.filterFocus:
			cmds = append(cmds, m.updateFilterPanel(msg))

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

func (m *Model) updateFilterPanel(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.catIndex < len(m.categories) {
			name := m.categories[m.catIndex]
			if m.selected[name] {
				delete(m.selected, name)
			} else {
				m.selected[name] = true
			}
			m.updateTableData()
		}
	default:
		switch msg.String() {
		case "up", "k":
			if m.catIndex > 0 {
				m.catIndex--
			}
		case "down", "j":
			if m.catIndex < len(m.categories)-1 {
				m.catIndex++
			}
		}
	}
	return nil
}

// syncData rebuilds the category list and table rows when the catalog
// has changed since the last rebuild.
func (m *Model) syncData() {
	products := m.state.GetProducts()
	if len(products) == m.loadedCount {
		return
	}
	m.loadedCount = len(products)

	seen := make(map[string]bool)
	m.categories = m.categories[:0]
	for i := range products {
		for _, c := range products[i].Categories {
			if c.Name != "" && !seen[c.Name] {
				seen[c.Name] = true
				m.categories = append(m.categories, c.Name)
			}
		}
	}
	sort.Strings(m.categories)

	if m.catIndex >= len(m.categories) {
		m.catIndex = 0
	}

	m.updateTableData()
}

// updateTableData rebuilds the table rows from the current category filter.
func (m *Model) updateTableData() {
	products := m.state.GetProducts()

	rows := make([]table.Row, 0, len(products))
	for i := range products {
		p := &products[i]
		if !p.InCategories(m.selected) {
			continue
		}
		rows = append(rows, table.Row{
			p.Name,
			formatPrice(p.Price),
			formatStock(p.StockQuantity),
			categoryNames(p.Categories),
		})
	}

	m.filteredRows = len(rows)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func formatPrice(price string) string {
	if price == "" {
		return "—"
	}
	return "$" + price
}

func formatStock(quantity *int) string {
	if quantity == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *quantity)
}

func categoryNames(categories []models.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	if len(names) == 0 {
		return "—"
	}

	joined := names[0]
	for _, n := range names[1:] {
		joined += ", " + n
	}
	return joined
}

// SetSize sets the available size for the products tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-8, 3))

	nameWidth := width - 72
	if nameWidth < 20 {
		nameWidth = 20
	}
	if nameWidth > 40 {
		nameWidth = 40
	}

	columns := []table.Column{
		{Title: "Product", Width: nameWidth},
		{Title: "Price", Width: 10},
		{Title: "Stock", Width: 10},
		{Title: "Categories", Width: 24},
	}
	m.table.SetColumns(columns)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	if m.filterFocus {
		return []key.Binding{m.keys.Toggle, m.keys.Clear, m.keys.Focus}
	}
	return []key.Binding{m.keys.Focus, m.keys.Clear}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Focus, m.keys.Toggle},
		{m.keys.Clear},
	}
}
