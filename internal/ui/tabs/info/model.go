// Package info provides the info tab for the storedash TUI.
package info

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/config"
	"github.com/mzerara/storedash/internal/db"
	"github.com/mzerara/storedash/internal/models"
)

// snapshotHistoryLimit bounds how many journal entries the tab shows.
const snapshotHistoryLimit = 30

// snapshotsLoadedMsg carries the fetch journal read from the database,
// plus the latest snapshot's per-day revenue rows.
type snapshotsLoadedMsg struct {
	snapshots []models.Snapshot
	daily     []models.DailyRevenue
	err       error
}

// keyMap defines the key bindings specific to the info tab.
type keyMap struct {
	Reload key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload history"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// Model represents the info tab state.
type Model struct {
	state    *app.State
	config   *config.Config
	database *db.DB
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int

	snapshots  []models.Snapshot
	daily      []models.DailyRevenue
	historyErr error
}

// New creates a new info model.
func New(state *app.State, cfg *config.Config, database *db.DB) *Model {
	return &Model{
		state:    state,
		config:   cfg,
		database: database,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the info tab.
func (m *Model) Init() tea.Cmd {
	return m.loadSnapshotsCmd()
}

// Update handles messages for the info tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case snapshotsLoadedMsg:
		m.snapshots = msg.snapshots
		m.daily = msg.daily
		m.historyErr = msg.err

	case app.ReportLoadedMsg:
		// A fresh report means a new journal row was written.
		cmds = append(cmds, m.loadSnapshotsCmd())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Reload):
			cmds = append(cmds, m.loadSnapshotsCmd())
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// loadSnapshotsCmd reads the fetch journal off the UI goroutine.
func (m *Model) loadSnapshotsCmd() tea.Cmd {
	database := m.database
	if database == nil {
		return nil
	}
	return func() tea.Msg {
		snapshots, err := database.RecentSnapshots(snapshotHistoryLimit)

		var daily []models.DailyRevenue
		if err == nil && len(snapshots) > 0 {
			daily, err = database.SnapshotDailyRevenue(snapshots[0].ID)
		}
		return snapshotsLoadedMsg{snapshots: snapshots, daily: daily, err: err}
	}
}

// SetSize sets the available size for the info tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Reload,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Reload},
	}
}
