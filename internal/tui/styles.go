package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors matching the output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - times, focus
	colorYellow  = lipgloss.Color("3")  // Yellow - ratings, loading
	colorRed     = lipgloss.Color("1")  // Red - errors
	colorGreen   = lipgloss.Color("2")  // Green - prices
	colorMagenta = lipgloss.Color("5")  // Magenta - airports
	colorBlue    = lipgloss.Color("4")  // Blue - brand, buttons
	colorWhite   = lipgloss.Color("15") // White - text
	colorGray    = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleTime    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleAirport = lipgloss.NewStyle().Foreground(colorMagenta)
	styleAirline = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	stylePrice   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleRating  = lipgloss.NewStyle().Foreground(colorYellow)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleTitle   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Underline(true)
	styleInput   = lipgloss.NewStyle().Foreground(colorWhite)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Chips: active choice and focused cursor (reverse video)
var (
	styleChipActive = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleChipCursor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(colorCyan).
			Bold(true)
)

// Buttons
var (
	styleButton = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorGray)
	styleButtonFocused = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorBlue).
				Bold(true)
)

// Navigation tabs
var (
	styleTab       = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	styleTabActive = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Underline(true).
			Padding(0, 1)
)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Inline error box
var styleErrorBox = lipgloss.NewStyle().
	Foreground(colorRed).
	Border(lipgloss.ThickBorder(), false, false, false, true).
	BorderForeground(colorRed).
	PaddingLeft(1)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
