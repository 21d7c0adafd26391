package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

const (
	nameColumn  = 28
	usersColumn = 8
	dateColumn  = 11
)

func (m Model) renderList() string {
	all := m.board.Tasks()
	lines := []string{TitleStyle.Render("Tasks")}
	if len(all) == 0 {
		return strings.Join(append(lines, LabelStyle.Render("No tasks yet.")), "\n")
	}
	selected, hasSelection := m.board.SelectedID()
	for i, t := range all {
		row := m.renderRow(t)
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		if hasSelection && selected == t.ID {
			lines = append(lines, SelectedStyle.Render(marker+row))
			continue
		}
		lines = append(lines, marker+row)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(t tasks.Task) string {
	return strings.Join([]string{
		fmt.Sprintf("%3d", t.ID),
		priorityMarker(t.Priority),
		pad(t.Name, nameColumn),
		pad(initials(t.AssignedTo), usersColumn),
		pad(present.FormatDate(t.DueDate, m.loc), dateColumn),
		statusBadge(t.Status),
	}, " ")
}

// initials stands in for avatar images in a terminal.
func initials(users []tasks.User) string {
	var b strings.Builder
	for _, u := range users {
		if u.Name == "" {
			continue
		}
		b.WriteString(strings.ToUpper(string([]rune(u.Name)[:1])))
	}
	return b.String()
}

func pad(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
