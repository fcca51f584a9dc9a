// Package studio implements the terminal flyer editor using Bubble Tea.
package studio

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

// Color palette - supermarket flyer tones
var (
	colorPaper     = lipgloss.Color("#FFF8E7")
	colorInk       = lipgloss.Color("#2B2118")
	colorHighlight = lipgloss.Color("#FF9800")
	colorSuccess   = lipgloss.Color("#4CAF50")
	colorError     = lipgloss.Color("#F44336")
	colorMuted     = lipgloss.Color("#9E9E9E")
	colorAccent    = lipgloss.Color("#D4A574")
)

// themeColors maps card themes to terminal swatches for the preview grid.
var themeColors = map[products.Theme]lipgloss.Color{
	products.ThemeYellow: lipgloss.Color("#F2C94C"),
	products.ThemeRed:    lipgloss.Color("#EB5757"),
	products.ThemePink:   lipgloss.Color("#F78FB3"),
	products.ThemeGreen:  lipgloss.Color("#6FCF97"),
	products.ThemeOrange: lipgloss.Color("#F2994A"),
	products.ThemeBlue:   lipgloss.Color("#56CCF2"),
}

// Styles holds all the lipgloss styles for the studio.
type Styles struct {
	App lipgloss.Style

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderHelp  lipgloss.Style

	Pill         lipgloss.Style
	PillSelected lipgloss.Style

	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	FieldValue   lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style

	Subtle  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
	HelpBar lipgloss.Style
}

// DefaultStyles returns the default studio styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorAccent).
			MarginBottom(1).
			Padding(0, 1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true),

		HeaderHelp: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		Pill: lipgloss.NewStyle().
			Foreground(colorPaper).
			Padding(0, 1),

		PillSelected: lipgloss.NewStyle().
			Foreground(colorInk).
			Background(colorHighlight).
			Bold(true).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12),

		FieldFocused: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Width(12),

		FieldValue: lipgloss.NewStyle().
			Foreground(colorPaper),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 1),

		Subtle: lipgloss.NewStyle().
			Foreground(colorMuted),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2),

		HelpBar: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
