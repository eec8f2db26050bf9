// Package overview provides the sales overview tab for the storedash TUI.
package overview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/ui/components"
)

// keyMap defines the key bindings specific to the overview tab.
type keyMap struct {
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Refresh    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Model represents the overview tab state.
type Model struct {
	state    *app.State
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new overview model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		spinner:  components.NewSpinner("Fetching orders..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// SetSize sets the available size for the overview.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.ScrollUp,
		m.keys.ScrollDown,
		m.keys.Refresh,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.ScrollUp, m.keys.ScrollDown},
		{m.keys.Refresh},
	}
}
