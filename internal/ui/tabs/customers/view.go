package customers

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// View renders the customers tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	m.syncData()

	if len(m.state.GetCustomers()) == 0 {
		empty := styles.HelpStyle.Render("No customer data. Customer browsing needs an API connection.")
		return styles.CenterBoth(empty, m.width, m.height)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.table.View(),
		m.renderFooter(),
	)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Customers")

	header := title
	if m.query != "" {
		header = lipgloss.JoinHorizontal(
			lipgloss.Bottom,
			title,
			"  ",
			styles.HelpStyle.Render(fmt.Sprintf("search: %q", m.query)),
		)
	}

	if m.searching {
		prompt := styles.FocusedStyle.Render("Search: ") + m.searchInput.View()
		return lipgloss.JoinVertical(lipgloss.Left, header, prompt, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "")
}

func (m *Model) renderFooter() string {
	total := len(m.state.GetCustomers())
	if m.filteredRows == total {
		return styles.HelpStyle.Render(fmt.Sprintf("%d customers", total))
	}
	return styles.HelpStyle.Render(fmt.Sprintf("%d of %d customers", m.filteredRows, total))
}
