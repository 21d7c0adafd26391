// Package tui provides the shared palette, styles, key bindings and layout
// helpers for the tasklane terminal UI.
package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night inspired palette
var (
	ColorPrimary = lipgloss.Color("#7aa2f7") // Blue
	ColorSuccess = lipgloss.Color("#9ece6a") // Green
	ColorWarning = lipgloss.Color("#e0af68") // Yellow
	ColorError   = lipgloss.Color("#f7768e") // Red
	ColorMuted   = lipgloss.Color("#565f89") // Gray
	ColorBorder  = lipgloss.Color("#3b4261")
	ColorBg      = lipgloss.Color("#1a1b26")
	ColorBgLight = lipgloss.Color("#24283b")
	ColorBgDark  = lipgloss.Color("#16161e")
	ColorFg      = lipgloss.Color("#c0caf5")
	ColorFgDim   = lipgloss.Color("#a9b1d6")

	// Status colors
	ColorStatusNew        = lipgloss.Color("#7dcfff") // Cyan
	ColorStatusPending    = ColorWarning
	ColorStatusInProgress = lipgloss.Color("#bb9af7") // Purple
	ColorStatusComplete   = ColorSuccess
)
