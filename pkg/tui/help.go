package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay renders the key bindings panel.
type HelpOverlay struct {
	Visible bool
}

func NewHelpOverlay() HelpOverlay {
	return HelpOverlay{}
}

func (h *HelpOverlay) Toggle() {
	h.Visible = !h.Visible
}

func commonBindings(keys CommonKeys) []HelpBinding {
	return []HelpBinding{
		HelpBindingFromKey(keys.NavUp),
		HelpBindingFromKey(keys.NavDown),
		HelpBindingFromKey(keys.Top),
		HelpBindingFromKey(keys.Bottom),
		HelpBindingFromKey(keys.Select),
		HelpBindingFromKey(keys.New),
		HelpBindingFromKey(keys.TabCycle),
		HelpBindingFromKey(keys.Toggle),
		HelpBindingFromKey(keys.Submit),
		HelpBindingFromKey(keys.Search),
		HelpBindingFromKey(keys.Copy),
		HelpBindingFromKey(keys.Back),
		HelpBindingFromKey(keys.Help),
		HelpBindingFromKey(keys.Quit),
	}
}

// Render produces the overlay, or "" when hidden.
func (h HelpOverlay) Render(keys CommonKeys, width int) string {
	if !h.Visible {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)

	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range commonBindings(keys) {
		b.WriteString(HelpKeyStyle.Render(bind.Key))
		b.WriteString("  ")
		b.WriteString(HelpDescStyle.Render(bind.Description))
		b.WriteString("\n")
	}

	overlay := lipgloss.NewStyle().
		Background(ColorBgDark).
		Foreground(ColorFg).
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)
	if width > 8 {
		overlay = overlay.Width(min(50, width-4))
	}
	return overlay.Render(strings.TrimRight(b.String(), "\n"))
}
