package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	pkgtui "github.com/mistakeknot/tasklane/pkg/tui"
	"github.com/sahilm/fuzzy"
)

// SearchOverlay fuzzy-filters tasks by name.
type SearchOverlay struct {
	input   textinput.Model
	items   []tasks.Task
	results []tasks.Task
	cursor  int
	visible bool
}

func NewSearchOverlay() *SearchOverlay {
	ti := textinput.New()
	ti.Placeholder = "Search tasks..."
	ti.CharLimit = 100
	ti.Width = 40
	return &SearchOverlay{input: ti}
}

func (s *SearchOverlay) SetItems(items []tasks.Task) {
	s.items = items
	s.updateResults()
}

func (s *SearchOverlay) Show() {
	s.visible = true
	s.input.SetValue("")
	s.input.Focus()
	s.updateResults()
}

func (s *SearchOverlay) Hide() {
	s.visible = false
	s.input.Blur()
}

func (s *SearchOverlay) Visible() bool { return s.visible }

func (s *SearchOverlay) Results() []tasks.Task { return s.results }

func (s *SearchOverlay) Selected() *tasks.Task {
	if len(s.results) == 0 {
		return nil
	}
	if s.cursor >= len(s.results) {
		s.cursor = len(s.results) - 1
	}
	return &s.results[s.cursor]
}

// Update returns picked=true when enter closed the overlay on a result.
func (s *SearchOverlay) Update(msg tea.Msg) (cmd tea.Cmd, picked bool) {
	if !s.visible {
		return nil, false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch keyMsg.String() {
	case "esc":
		s.Hide()
		return nil, false
	case "enter":
		s.Hide()
		return nil, s.Selected() != nil
	case "up", "ctrl+k":
		if s.cursor > 0 {
			s.cursor--
		}
		return nil, false
	case "down", "ctrl+j":
		if s.cursor < len(s.results)-1 {
			s.cursor++
		}
		return nil, false
	}
	s.input, cmd = s.input.Update(msg)
	s.updateResults()
	return cmd, false
}

func (s *SearchOverlay) View(width int) string {
	if !s.visible {
		return ""
	}
	lines := []string{TitleStyle.Render("Search"), s.input.View(), ""}
	if len(s.results) == 0 {
		lines = append(lines, LabelStyle.Render("No matching tasks."))
	}
	for i, t := range s.results {
		row := fmt.Sprintf("#%d %s", t.ID, t.Name)
		if i == s.cursor {
			lines = append(lines, SelectedStyle.Render("> "+row))
			continue
		}
		lines = append(lines, UnselectedStyle.Render("  "+row))
	}
	box := pkgtui.PanelStyle.Copy().Padding(1, 2).BorderForeground(pkgtui.ColorPrimary)
	if width > 4 {
		box = box.Width(width - 4)
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (s *SearchOverlay) updateResults() {
	query := strings.TrimSpace(s.input.Value())
	s.cursor = 0
	if query == "" {
		s.results = s.items
		return
	}
	names := make([]string, len(s.items))
	for i, t := range s.items {
		names[i] = t.Name
	}
	matches := fuzzy.Find(query, names)
	s.results = make([]tasks.Task, 0, len(matches))
	for _, m := range matches {
		s.results = append(s.results, s.items[m.Index])
	}
}
