package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(ColorWhite)
	dimStyle     = lipgloss.NewStyle().Foreground(ColorDarkGray)
	warningStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// Picker styles
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	CursorStyle   = lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)
	HelpStyle     = lipgloss.NewStyle().Foreground(ColorDarkGray)
)
