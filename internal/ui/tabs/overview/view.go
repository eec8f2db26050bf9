package overview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	report := m.state.GetReport()
	if report == nil {
		empty := styles.HelpStyle.Render("No sales data yet. Press r to refresh.")
		return styles.CenterBoth(empty, m.width, m.height)
	}

	var sections []string

	sections = append(sections, m.renderTitle(report))
	sections = append(sections, m.renderStatCards(report))
	sections = append(sections, m.renderTopProducts(report))
	sections = append(sections, m.renderRevenueChart(report))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle(report *models.SalesReport) string {
	title := styles.TitleStyle.Render("Sales Overview")
	subtitle := styles.HelpStyle.Render(
		"Last fetched " + report.FetchedAt.Format("15:04:05"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderStatCards(report *models.SalesReport) string {
	cardWidth := max((m.width-10)/3, 18)

	revenue := components.StatCard(
		"Total Revenue",
		"$"+report.TotalRevenue.StringFixed(2),
		"",
		cardWidth,
	)

	orders := components.StatCard(
		"Orders",
		fmt.Sprintf("%d", report.OrderCount),
		"",
		cardWidth,
	)

	skippedSubtitle := ""
	if report.SkippedCount() > 0 {
		skippedSubtitle = "excluded from totals"
	}
	skipped := components.StatCard(
		"Skipped",
		fmt.Sprintf("%d", report.SkippedCount()),
		skippedSubtitle,
		cardWidth,
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, revenue, " ", orders, " ", skipped)
}

func (m *Model) renderTopProducts(report *models.SalesReport) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Top Products")))
	rows = append(rows, "")

	if len(report.TopProducts) == 0 {
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No product sales in this window")))
	} else {
		maxQty := report.TopProducts[0].Quantity
		for i, p := range report.TopProducts {
			row := components.RankedRow(
				i+1,
				p.Name,
				fmt.Sprintf("%d sold", p.Quantity),
				float64(p.Quantity),
				float64(maxQty),
				cardWidth-4,
			)
			rows = append(rows, row)
		}
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRevenueChart(report *models.SalesReport) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Daily Revenue")))
	rows = append(rows, "")

	data := make([]float64, 0, len(report.DailySeries))
	for _, d := range report.DailySeries {
		data = append(data, d.Total.InexactFloat64())
	}

	chartHeight := max(min(m.height/3, 12), 4)
	rows = append(rows, components.RenderLineChart(data, cardWidth-8, chartHeight, ""))

	if len(report.DailySeries) > 0 {
		first := report.DailySeries[0].Date
		last := report.DailySeries[len(report.DailySeries)-1].Date
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render(fmt.Sprintf("  %s … %s", first, last)))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
