package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/ui/styles"
)

// LoadingSpinner is a labelled spinner shown while a fetch is in flight.
type LoadingSpinner struct {
	spinner spinner.Model
	label   string
	style   lipgloss.Style
}

// NewSpinner returns a dot spinner labelled with the activity it covers,
// e.g. "Fetching orders...".
func NewSpinner(label string) LoadingSpinner {
	return LoadingSpinner{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Primary)),
		),
		label: label,
		style: lipgloss.NewStyle().Foreground(styles.TextSecondary),
	}
}

// Init starts the spinner ticking.
func (l LoadingSpinner) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the animation on tick messages.
func (l LoadingSpinner) Update(msg tea.Msg) (LoadingSpinner, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the spinner glyph alone.
func (l LoadingSpinner) View() string {
	return l.spinner.View()
}

// ViewWithLabel renders the spinner glyph followed by its label.
func (l LoadingSpinner) ViewWithLabel() string {
	return l.spinner.View() + " " + l.style.Render(l.label)
}

// SetLabel replaces the label.
func (l *LoadingSpinner) SetLabel(label string) {
	l.label = label
}

// Label returns the current label.
func (l LoadingSpinner) Label() string {
	return l.label
}

// Tick returns the spinner's tick command.
func (l LoadingSpinner) Tick() tea.Cmd {
	return l.spinner.Tick
}

// RenderSpinnerCentered centers the labelled spinner in the given box,
// used as the whole-tab view during the initial load.
func RenderSpinnerCentered(s LoadingSpinner, width, height int) string {
	return styles.CenterBoth(s.ViewWithLabel(), width, height)
}
