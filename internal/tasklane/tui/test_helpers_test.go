package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mistakeknot/tasklane/internal/tasklane/board"
	"github.com/mistakeknot/tasklane/internal/tasklane/seed"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

var fixedNow = time.Date(2025, time.June, 5, 9, 0, 0, 0, time.UTC)

type clipboardStub struct {
	text string
}

func (c *clipboardStub) write(s string) error {
	c.text = s
	return nil
}

// newTestModel builds a model over the default seed. seedDetail routes the
// detail lookup through the seed provider instead of the store.
func newTestModel(t *testing.T, requireName, seedDetail bool) (Model, *clipboardStub) {
	t.Helper()
	data := seed.Default(fixedNow)
	opts := board.Options{
		RequireName: requireName,
		Clock:       func() time.Time { return fixedNow },
	}
	if seedDetail {
		opts.Lookup = data
	}
	b := board.New(tasks.SeedStore(data.ListTasks()), data, opts)
	clip := &clipboardStub{}
	m := NewModel(b, Options{Location: time.UTC, Clipboard: clip.write})
	return m, clip
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter  = tea.KeyMsg{Type: tea.KeyEnter}
	esc    = tea.KeyMsg{Type: tea.KeyEsc}
	tab    = tea.KeyMsg{Type: tea.KeyTab}
	space  = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	submit = tea.KeyMsg{Type: tea.KeyCtrlS}
)
