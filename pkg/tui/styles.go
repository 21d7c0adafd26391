package tui

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().
			Background(ColorBgDark).
			Foreground(ColorFg).
			Padding(0, 1).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgDim)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// List rows
	SelectedStyle = lipgloss.NewStyle().
			Background(ColorBgLight).
			Foreground(ColorFg).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorFgDim)

	// Picker rows
	CheckedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Priority markers
var (
	PriorityLowStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	PriorityMediumStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	PriorityHighStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Status badges
var (
	badgeBase = lipgloss.NewStyle().Padding(0, 1).Foreground(ColorBg)

	StatusNewStyle        = badgeBase.Copy().Background(ColorStatusNew)
	StatusPendingStyle    = badgeBase.Copy().Background(ColorStatusPending)
	StatusInProgressStyle = badgeBase.Copy().Background(ColorStatusInProgress)
	StatusCompleteStyle   = badgeBase.Copy().Background(ColorStatusComplete)
)
