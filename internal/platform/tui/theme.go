package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Theme contains the visual styles of the terminal front end.
type Theme struct {
	// Screen cell colors, keyed by the palette used by the renderer
	Cells map[core.Color]lipgloss.Style

	// Help footer
	Help lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	TableBorder     lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:      lipgloss.NewStyle(),
			core.ColorRed:          fg("1"),   // Still lava
			core.ColorMagenta:      fg("5"),   // Monsters
			core.ColorOrange:       fg("208"), // Moving lava
			core.ColorGray:         fg("245"), // Walls
			core.ColorBrightRed:    fg("9"),
			core.ColorBrightGreen:  fg("10"),
			core.ColorBrightYellow: fg("11").Bold(true),
			core.ColorBrightWhite:  fg("15"),
		},

		Help: fg("241"),

		MenuTitle:       fg("229").Bold(true),
		MenuDescription: fg("245").Italic(true),
		TableBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: fg("229").Background(lipgloss.Color("57")),
	}
}

// currentTheme is the active theme.
var currentTheme = DefaultTheme()

// GetTheme returns the current theme.
func GetTheme() Theme {
	return currentTheme
}
