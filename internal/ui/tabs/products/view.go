package products

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/ui/components"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// View renders the products tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	m.syncData()

	if len(m.state.GetProducts()) == 0 {
		empty := styles.HelpStyle.Render("No catalog data. Catalog browsing needs an API connection.")
		return styles.CenterBoth(empty, m.width, m.height)
	}

	main := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.table.View(),
		m.renderFooter(),
	)

	if m.filterFocus {
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.renderFilterPanel(), " ", main)
	}

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(main)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Products")

	filterLabel := "all categories"
	if len(m.selected) > 0 {
		filterLabel = fmt.Sprintf("%d categories selected", len(m.selected))
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		title,
		"  ",
		styles.HelpStyle.Render(filterLabel),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "")
}

func (m *Model) renderFooter() string {
	total := len(m.state.GetProducts())

	count := fmt.Sprintf("%d products", total)
	if m.filteredRows != total {
		count = fmt.Sprintf("%d of %d products", m.filteredRows, total)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.HelpStyle.Render(count),
		m.renderStockLine(),
	)
}

// renderStockLine shows the stock level of the highlighted product.
func (m *Model) renderStockLine() string {
	products := m.state.GetProducts()
	idx := m.table.Cursor()

	shown := 0
	for i := range products {
		p := &products[i]
		if !p.InCategories(m.selected) {
			continue
		}
		if shown == idx {
			label := stockLabel(p.StockQuantity)
			return styles.GetStockStyle(p.StockQuantity).Render(label)
		}
		shown++
	}
	return ""
}

func stockLabel(quantity *int) string {
	switch {
	case quantity == nil:
		return "stock not tracked"
	case *quantity <= 0:
		return "out of stock"
	case *quantity <= 5:
		return fmt.Sprintf("low stock: %d left", *quantity)
	default:
		return fmt.Sprintf("in stock: %d", *quantity)
	}
}

// renderFilterPanel renders the category checkbox list.
func (m *Model) renderFilterPanel() string {
	var rows []string

	rows = append(rows, styles.CardTitleStyle.Render("Categories"))
	rows = append(rows, "")

	if len(m.categories) == 0 {
		rows = append(rows, styles.HelpStyle.Render("(none)"))
	}

	for i, name := range m.categories {
		check := "[ ]"
		if m.selected[name] {
			check = "[x]"
		}

		line := fmt.Sprintf("%s %s", check, name)
		if i == m.catIndex {
			line = styles.SelectedListItemStyle.Render("▸ " + line)
		} else {
			line = styles.ListItemStyle.Render("  " + line)
		}
		rows = append(rows, line)
	}

	return styles.FocusedBorderStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
