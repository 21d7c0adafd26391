package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	pkgtui "github.com/mistakeknot/tasklane/pkg/tui"
)

var (
	TitleStyle      = pkgtui.TitleStyle
	SubtitleStyle   = pkgtui.SubtitleStyle
	LabelStyle      = pkgtui.LabelStyle
	ErrorStyle      = pkgtui.ErrorStyle
	SelectedStyle   = pkgtui.SelectedStyle
	UnselectedStyle = pkgtui.UnselectedStyle
	CheckedStyle    = pkgtui.CheckedStyle
	HelpKeyStyle    = pkgtui.HelpKeyStyle
	HelpDescStyle   = pkgtui.HelpDescStyle
	HeaderStyle     = pkgtui.HeaderStyle
	FooterStyle     = pkgtui.FooterStyle
)

// classStyles maps the presentation class names to terminal styles.
var classStyles = map[string]lipgloss.Style{
	"task-priority-low":      pkgtui.PriorityLowStyle,
	"task-priority-medium":   pkgtui.PriorityMediumStyle,
	"task-priority-high":     pkgtui.PriorityHighStyle,
	"task-status-new":        pkgtui.StatusNewStyle,
	"task-status-pending":    pkgtui.StatusPendingStyle,
	"task-status-inprogress": pkgtui.StatusInProgressStyle,
	"task-status-complete":   pkgtui.StatusCompleteStyle,
}

func styleFor(class string) lipgloss.Style {
	if s, ok := classStyles[class]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func priorityMarker(p tasks.Priority) string {
	return styleFor(present.PriorityClass(p)).Render("●")
}

func statusBadge(s tasks.Status) string {
	return styleFor(present.StatusClass(s)).Render(present.StatusLabel(s))
}

type keyDesc struct {
	Key  string
	Desc string
}

// renderKeyHelpLine renders styled key•desc pairs for the footer.
func renderKeyHelpLine(keys []keyDesc) string {
	parts := make([]string, len(keys))
	for i, kd := range keys {
		parts[i] = HelpKeyStyle.Render(kd.Key) + " " + HelpDescStyle.Render(kd.Desc)
	}
	return strings.Join(parts, HelpDescStyle.Render(" • "))
}
