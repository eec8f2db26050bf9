// Package components provides reusable UI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mzerara/storedash/internal/logger"
	"github.com/mzerara/storedash/internal/ui/styles"
)

// StatCard renders a bordered card with a title and a large value line.
func StatCard(title, value, subtitle string, width int) string {
	titleStr := styles.CardTitleStyle.Render(title)
	valueStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true).
		Render(value)

	lines := []string{titleStr, valueStr}
	if subtitle != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Render(subtitle))
	}

	return styles.CardStyle.
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// StatusBadge renders an order status as a colored badge.
func StatusBadge(status string) string {
	return styles.GetStatusStyle(status).Render(strings.ToUpper(status))
}

// RevenueBar renders a horizontal gradient bar scaled against a maximum,
// used for the top products ranking.
func RevenueBar(value, maxValue float64, width int) string {
	if width < 1 {
		return ""
	}

	percent := 0.0
	if maxValue > 0 {
		percent = value / maxValue
	}

	filled := int(float64(width) * percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#6c5ce7", "#51cf66", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.BgLight)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// RankedRow renders a single top-products row: rank, name, bar, amount.
func RankedRow(rank int, name, amount string, value, maxValue float64, width int) string {
	const rankWidth = 4
	const amountWidth = 12

	nameWidth := 24
	barWidth := width - rankWidth - nameWidth - amountWidth - 4
	if barWidth < 10 {
		barWidth = 10
	}

	rankStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(rankWidth).
		Render(fmt.Sprintf("%d.", rank))

	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}
	nameStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(nameWidth).
		Render(name)

	bar := RevenueBar(value, maxValue, barWidth)

	amountStr := lipgloss.NewStyle().
		Foreground(styles.Success).
		Width(amountWidth).
		Align(lipgloss.Right).
		Render(amount)

	return lipgloss.JoinHorizontal(lipgloss.Left, rankStr, nameStr, " ", bar, " ", amountStr)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
