package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.board.CloseForm()
		m.nameInput.Blur()
		m.descInput.Blur()
		m.formErr = ""
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.TabCycle):
		step := formField(1)
		if msg.Type == tea.KeyShiftTab {
			step = fieldCount - 1
		}
		cmd := m.focusField((m.focus + step) % fieldCount)
		return m, cmd
	}

	form := m.board.Form()
	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		form.UpdateName(m.nameInput.Value())
		if m.formErr != "" && strings.TrimSpace(m.nameInput.Value()) != "" {
			m.formErr = ""
		}
	case fieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
		form.UpdateDescription(m.descInput.Value())
	case fieldAssignees:
		m.updatePicker(msg)
	}
	return m, cmd
}

func (m *Model) updatePicker(msg tea.KeyMsg) {
	picker := m.board.Picker()
	switch {
	case key.Matches(msg, m.keys.NavDown):
		if m.pickCursor < picker.Len()-1 {
			m.pickCursor++
		}
	case key.Matches(msg, m.keys.NavUp):
		if m.pickCursor > 0 {
			m.pickCursor--
		}
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Select):
		if err := picker.ToggleAssign(m.pickCursor); err != nil {
			m.status = err.Error()
		}
	}
}

func (m *Model) focusField(f formField) tea.Cmd {
	m.focus = f
	m.nameInput.Blur()
	m.descInput.Blur()
	switch f {
	case fieldName:
		return m.nameInput.Focus()
	case fieldDescription:
		return m.descInput.Focus()
	}
	return nil
}

func (m Model) renderForm() string {
	lines := []string{TitleStyle.Render("New task"), ""}
	lines = append(lines, m.fieldLabel(fieldName, "Name"), m.nameInput.View())
	if m.formErr != "" {
		lines = append(lines, ErrorStyle.Render(m.formErr))
	}
	lines = append(lines, "", m.fieldLabel(fieldDescription, "Description"), m.descInput.View(), "")
	lines = append(lines, m.fieldLabel(fieldAssignees, "Assign Users"))

	if picker := m.board.Picker(); picker != nil {
		for i, c := range picker.Candidates() {
			box := "[ ]"
			if c.Assigned {
				box = CheckedStyle.Render("[x]")
			}
			cursor := "  "
			if m.focus == fieldAssignees && i == m.pickCursor {
				cursor = "> "
			}
			lines = append(lines, cursor+box+" "+c.User.Name+" "+SubtitleStyle.Render(assetPath(c.User.Image)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) fieldLabel(f formField, text string) string {
	if m.focus == f {
		return TitleStyle.Render(text)
	}
	return LabelStyle.Render(text)
}
