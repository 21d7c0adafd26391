package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// refreshDetail re-resolves the selected task into the detail viewport.
func (m *Model) refreshDetail() {
	if m.board == nil || !m.board.DetailOpen() {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.renderDetail())
	m.detail.GotoTop()
}

func (m Model) renderDetail() string {
	task, err := m.board.Detail()
	if err != nil {
		id, _ := m.board.SelectedID()
		if errors.Is(err, tasks.ErrNotFound) {
			return TitleStyle.Render(fmt.Sprintf("Task %d not found", id)) + "\n\n" +
				LabelStyle.Render(wrapText("It may have been created after start-up. Press esc to go back.", m.layout.RightWidth()))
		}
		return ErrorStyle.Render(err.Error())
	}

	width := max(20, m.layout.RightWidth())
	lines := []string{
		TitleStyle.Render(wrapText(task.Name, width)),
		"",
		LabelStyle.Render("Priority ") + priorityMarker(task.Priority) + " " + present.PriorityLabel(task.Priority),
		LabelStyle.Render("Status   ") + statusBadge(task.Status),
		LabelStyle.Render("Due Date ") + present.FormatDate(task.DueDate, m.loc),
		"",
	}
	if desc := m.md.Render(task.Description, width-2); desc != "" {
		lines = append(lines, desc, "")
	}

	lines = append(lines, LabelStyle.Render("Assigned"))
	if len(task.AssignedTo) == 0 {
		lines = append(lines, SubtitleStyle.Render("  nobody"))
	}
	for _, u := range task.AssignedTo {
		lines = append(lines, fmt.Sprintf("  %s %s", u.Name, SubtitleStyle.Render(assetPath(u.Image))))
	}

	lines = append(lines, "", LabelStyle.Render("Comments"))
	if len(task.Comments) == 0 {
		lines = append(lines, SubtitleStyle.Render("  No comments."))
	}
	for _, c := range task.Comments {
		lines = append(lines,
			wrapText(fmt.Sprintf("  %s %s", TitleStyle.Render(c.User), SubtitleStyle.Render(assetPath(c.Image))), width),
			indent(wrapText(c.Message, width-4), "    "),
		)
	}
	return strings.Join(lines, "\n")
}

// wrapText word-wraps s to width cells and hard-breaks words that are
// still too long. The viewport cuts rather than wraps.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func assetPath(image string) string {
	return "static/" + image
}
