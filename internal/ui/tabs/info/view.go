package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/config"
	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
	"github.com/mzerara/storedash/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderHistoryCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, fetch history and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

// renderConfigCard renders the active configuration. Credentials are
// deliberately absent: only their presence is shown, never their value.
func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		if m.config.Offline() {
			rows = append(rows, m.renderConfigRow("Mode", "offline (orders file)"))
			rows = append(rows, m.renderConfigRow("Orders File", m.config.OrdersPath))
		} else {
			rows = append(rows, m.renderConfigRow("Mode", "live API"))
			rows = append(rows, m.renderConfigRow("Store", m.config.StoreBaseURL))
			rows = append(rows, m.renderConfigRow("Credentials", credentialStatus(m.config)))
		}
		rows = append(rows, m.renderConfigRow("Database", m.config.DatabasePath))
		rows = append(rows, m.renderConfigRow("Refresh Every", m.config.RefreshInterval.String()))
		rows = append(rows, m.renderConfigRow("Top Products", fmt.Sprintf("%d", m.config.TopProducts)))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func credentialStatus(cfg *config.Config) string {
	if cfg.ConsumerKey != "" && cfg.ConsumerSecret != "" {
		return "configured via environment"
	}
	return "missing"
}

func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(16).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderHistoryCard renders the fetch journal with a revenue sparkline.
func (m *Model) renderHistoryCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Fetch History"))
	rows = append(rows, "")

	switch {
	case m.historyErr != nil:
		rows = append(rows, styles.ErrorTextStyle.Render("history unavailable: "+m.historyErr.Error()))

	case len(m.snapshots) == 0:
		rows = append(rows, styles.HelpStyle.Render("No fetches recorded yet"))

	default:
		rows = append(rows, m.renderHistorySparkline()...)
		rows = append(rows, "")

		shown := len(m.snapshots)
		if shown > 5 {
			shown = 5
		}
		for _, snap := range m.snapshots[:shown] {
			rows = append(rows, m.renderSnapshotRow(snap))
		}
		if len(m.snapshots) > shown {
			rows = append(rows, styles.HelpStyle.Render(
				fmt.Sprintf("  … %d more", len(m.snapshots)-shown),
			))
		}
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderHistorySparkline charts the latest snapshot's per-day revenue.
// Snapshots journaled before any order had a parseable date carry no daily
// rows; those fall back to charting total revenue per fetch.
func (m *Model) renderHistorySparkline() []string {
	if len(m.daily) > 0 {
		data := make([]float64, 0, len(m.daily))
		for _, point := range m.daily {
			data = append(data, point.Total.InexactFloat64())
		}
		return []string{
			"  " + components.RenderSparkline(data, m.cardWidth()-8),
			styles.HelpStyle.Render(fmt.Sprintf("  daily revenue, %s to %s",
				m.daily[0].Date, m.daily[len(m.daily)-1].Date)),
		}
	}

	// Oldest to newest, so the sparkline reads left to right.
	data := make([]float64, 0, len(m.snapshots))
	for i := len(m.snapshots) - 1; i >= 0; i-- {
		data = append(data, m.snapshots[i].TotalRevenue.InexactFloat64())
	}
	return []string{
		"  " + components.RenderSparkline(data, m.cardWidth()-8),
		styles.HelpStyle.Render("  total revenue per fetch"),
	}
}

func (m *Model) renderSnapshotRow(snap models.Snapshot) string {
	when := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(snap.FetchedAt.Format("Jan 02 15:04"))

	revenue := styles.SuccessTextStyle.Render("$" + snap.TotalRevenue.StringFixed(2))

	detail := fmt.Sprintf("%d orders", snap.OrderCount)
	if snap.SkippedCount > 0 {
		detail += fmt.Sprintf(", %d skipped", snap.SkippedCount)
	}

	source := styles.HelpStyle.Render("[" + snap.Source + "]")

	return fmt.Sprintf("  %s  %s  %s %s", when, revenue,
		lipgloss.NewStyle().Foreground(styles.TextMuted).Render(detail), source)
}

// renderAboutCard renders version and runtime information.
func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About storedash"))
	rows = append(rows, "")

	rows = append(rows, m.renderConfigRow("Version", version.GetVersion()))
	rows = append(rows, m.renderConfigRow("Commit", version.GetCommit()))
	rows = append(rows, m.renderConfigRow("Build Date", version.GetDate()))
	rows = append(rows, m.renderConfigRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	if stats := m.state.GetStats(); stats != nil {
		rows = append(rows, "")
		rows = append(rows, fmt.Sprintf("Orders: %s  Products: %s  Customers: %s",
			styles.InfoTextStyle.Render(fmt.Sprintf("%d", stats.OrderCount)),
			styles.InfoTextStyle.Render(fmt.Sprintf("%d", stats.ProductCount)),
			styles.InfoTextStyle.Render(fmt.Sprintf("%d", stats.CustomerCount)),
		))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
