// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the storedash theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("205") // Pink
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark   = lipgloss.Color("235")
	BgLight  = lipgloss.Color("237")
	BgAccent = lipgloss.Color("236")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")

	// ToastStyle for floating notifications.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginBottom(1)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2).
	Padding(0, 1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// FocusedStyle is used for focused input elements.
var FocusedStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// BlurredStyle is used for unfocused input elements.
var BlurredStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// FocusedBorderStyle creates a focused border.
var FocusedBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(0, 1)

// BlurredBorderStyle creates an unfocused border.
var BlurredBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 1)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Primary).
	Padding(1, 3).
	Background(BgDark)

// ListItemStyle styles list items.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedListItemStyle styles selected list items.
var SelectedListItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Foreground(Primary).
	Bold(true).
	SetString("> ")

// TableHeaderStyle styles table headers.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(Subtle)

// TableCellStyle styles table cells.
var TableCellStyle = lipgloss.NewStyle().
	Padding(0, 1)

// TableSelectedStyle styles selected table rows.
var TableSelectedStyle = lipgloss.NewStyle().
	Background(BgAccent).
	Foreground(TextPrimary).
	Bold(true)

// StatusCompletedStyle styles completed order badges.
var StatusCompletedStyle = lipgloss.NewStyle().
	Foreground(Success).
	Bold(true)

// StatusPendingStyle styles pending order badges.
var StatusPendingStyle = lipgloss.NewStyle().
	Foreground(Warning)

// StatusProcessingStyle styles processing order badges.
var StatusProcessingStyle = lipgloss.NewStyle().
	Foreground(Info)

// StatusCancelledStyle styles cancelled order badges.
var StatusCancelledStyle = lipgloss.NewStyle().
	Foreground(Error)

// StatusUnknownStyle styles unrecognized order statuses.
var StatusUnknownStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// StockInStyle styles in-stock quantities.
var StockInStyle = lipgloss.NewStyle().
	Foreground(Success)

// StockLowStyle styles low-stock quantities.
var StockLowStyle = lipgloss.NewStyle().
	Foreground(Warning)

// StockOutStyle styles out-of-stock markers.
var StockOutStyle = lipgloss.NewStyle().
	Foreground(Error).
	Bold(true)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// SuccessTextStyle for success messages.
var SuccessTextStyle = lipgloss.NewStyle().
	Foreground(Success)

// WarningTextStyle for warning messages.
var WarningTextStyle = lipgloss.NewStyle().
	Foreground(Warning)

// InfoTextStyle for info messages.
var InfoTextStyle = lipgloss.NewStyle().
	Foreground(Info)

// GetStatusStyle returns the style for an order status badge.
func GetStatusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return StatusCompletedStyle
	case "pending":
		return StatusPendingStyle
	case "processing":
		return StatusProcessingStyle
	case "cancelled":
		return StatusCancelledStyle
	default:
		return StatusUnknownStyle
	}
}

// GetStockStyle returns the style for a stock quantity. A nil quantity means
// the store does not track stock for the product.
func GetStockStyle(quantity *int) lipgloss.Style {
	if quantity == nil {
		return lipgloss.NewStyle().Foreground(Subtle)
	}
	switch {
	case *quantity <= 0:
		return StockOutStyle
	case *quantity <= 5:
		return StockLowStyle
	default:
		return StockInStyle
	}
}

// CenterHorizontal centers content horizontally within a given width.
func CenterHorizontal(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
