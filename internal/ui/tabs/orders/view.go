package orders

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// View renders the orders tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	m.syncData()

	if m.selected != nil {
		return m.renderDetail(m.selected)
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.table.View())
	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Orders")

	statusLabel := "all statuses"
	if s := m.statusFilter(); s != "" {
		statusLabel = s
	}
	filters := fmt.Sprintf("status: %s", statusLabel)
	if m.query != "" {
		filters += fmt.Sprintf("  search: %q", m.query)
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		title,
		"  ",
		styles.HelpStyle.Render(filters),
	)

	if m.searching {
		prompt := styles.FocusedStyle.Render("Search: ") + m.searchInput.View()
		return lipgloss.JoinVertical(lipgloss.Left, header, prompt, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "")
}

func (m *Model) renderFooter() string {
	total := len(m.state.GetOrders())
	shown := len(m.filtered)

	if shown == total {
		return styles.HelpStyle.Render(fmt.Sprintf("%d orders", total))
	}
	return styles.HelpStyle.Render(fmt.Sprintf("%d of %d orders", shown, total))
}

// renderDetail renders the full detail view of one order.
func (m *Model) renderDetail(o *models.Order) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.TitleStyle.Render(fmt.Sprintf("Order #%d", o.ID)),
		"  ",
		components.StatusBadge(o.Status),
	)
	rows = append(rows, header)
	rows = append(rows, styles.HelpStyle.Render(o.CreatedAt.Format("Mon, 02 Jan 2006 15:04")))
	rows = append(rows, "")

	rows = append(rows, styles.CardTitleStyle.Render("Items"))
	for _, item := range o.LineItems {
		line := fmt.Sprintf("  %-30s ×%-3d %12s",
			truncate(item.Name, 30),
			item.Quantity,
			"$"+item.Total.StringFixed(2),
		)
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(line))
	}
	rows = append(rows, "")

	totalLine := fmt.Sprintf("  %-34s %12s", "Total", "$"+o.Total.StringFixed(2))
	rows = append(rows, styles.SuccessTextStyle.Bold(true).Render(totalLine))
	rows = append(rows, "")

	rows = append(rows, styles.CardTitleStyle.Render("Billing"))
	rows = append(rows, renderAddress(o.Billing)...)
	rows = append(rows, "")

	rows = append(rows, styles.CardTitleStyle.Render("Shipping"))
	rows = append(rows, renderAddress(o.Shipping)...)
	if o.ShippingMethod != "" {
		rows = append(rows, styles.HelpStyle.Render("  via "+o.ShippingMethod))
	}
	rows = append(rows, "")

	rows = append(rows, styles.HelpStyle.Render("esc to go back"))

	card := styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(card)
}

func renderAddress(a models.Address) []string {
	style := lipgloss.NewStyle().Foreground(styles.TextSecondary)

	var lines []string
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name != "" {
		lines = append(lines, style.Render("  "+name))
	}
	if a.Address1 != "" {
		lines = append(lines, style.Render("  "+a.Address1))
	}

	cityLine := strings.TrimSpace(a.City + " " + a.Postcode)
	if cityLine != "" {
		lines = append(lines, style.Render("  "+cityLine))
	}
	if a.Phone != "" {
		lines = append(lines, style.Render("  "+a.Phone))
	}

	if len(lines) == 0 {
		lines = append(lines, styles.HelpStyle.Render("  (none)"))
	}
	return lines
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}
