package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mistakeknot/tasklane/internal/tasklane/board"
	pkgtui "github.com/mistakeknot/tasklane/pkg/tui"
)

type formField int

const (
	fieldName formField = iota
	fieldDescription
	fieldAssignees
	fieldCount
)

type statusMsg string

type Options struct {
	// Location renders due dates; nil means time.Local.
	Location *time.Location
	// Clipboard receives copied text; nil means the system clipboard.
	Clipboard func(string) error
}

// Model renders a board and turns key presses into board operations. It
// never mutates task state except through the board.
type Model struct {
	board  *board.Board
	keys   pkgtui.CommonKeys
	help   pkgtui.HelpOverlay
	layout *pkgtui.SplitLayout
	search *SearchOverlay
	md     *MarkdownCache
	loc    *time.Location
	copyFn func(string) error

	width  int
	height int
	cursor int
	status string

	focus      formField
	nameInput  textinput.Model
	descInput  textarea.Model
	pickCursor int
	formErr    string

	detail viewport.Model
}

func NewModel(b *board.Board, opts Options) Model {
	m := Model{
		board:  b,
		keys:   pkgtui.NewCommonKeys(),
		help:   pkgtui.NewHelpOverlay(),
		layout: pkgtui.NewSplitLayout(0.55),
		search: NewSearchOverlay(),
		md:     NewMarkdownCache(),
		loc:    opts.Location,
		copyFn: opts.Clipboard,
		width:  120,
		height: 40,
	}
	if m.loc == nil {
		m.loc = time.Local
	}
	if m.copyFn == nil {
		m.copyFn = clipboard.WriteAll
	}
	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Task name"
	m.nameInput.CharLimit = 200
	m.descInput = textarea.New()
	m.descInput.Placeholder = "Task description"
	m.descInput.ShowLineNumbers = false
	m.descInput.SetHeight(6)
	m.detail = viewport.New(0, 0)
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m.resize()
		return m, nil
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case pkgtui.ToggleHelpMsg:
		m.help.Toggle()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.help.Visible {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
				m.help.Toggle()
			}
			return m, nil
		}
		if m.search.Visible() {
			cmd, picked := m.search.Update(msg)
			if picked {
				m.selectTask(m.search.Selected().ID)
			}
			return m, cmd
		}
		if m.board.FormOpen() {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.board.Tasks())
	switch {
	case key.Matches(msg, m.keys.Help):
		return m, pkgtui.HandleCommon(msg, m.keys)
	case key.Matches(msg, m.keys.New):
		cmd := m.openForm()
		return m, cmd
	case key.Matches(msg, m.keys.Select):
		all := m.board.Tasks()
		if m.cursor < len(all) {
			m.selectTask(all[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Back):
		m.board.ClearSelection()
	case key.Matches(msg, m.keys.Search):
		m.search.SetItems(m.board.Tasks())
		m.search.Show()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.NavDown):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NavUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		if count > 0 {
			m.cursor = count - 1
		}
	case msg.Type == tea.KeyPgDown || msg.Type == tea.KeyPgUp:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectTask opens id in the detail pane and moves the cursor onto it.
func (m *Model) selectTask(id uint32) {
	m.board.SelectTask(id)
	for i, t := range m.board.Tasks() {
		if t.ID == id {
			m.cursor = i
			break
		}
	}
	m.formErr = ""
	m.refreshDetail()
}

func (m *Model) openForm() tea.Cmd {
	m.board.OpenForm()
	m.focus = fieldName
	m.pickCursor = 0
	m.formErr = ""
	m.nameInput.Reset()
	m.descInput.Reset()
	m.descInput.Blur()
	return m.nameInput.Focus()
}

func (m *Model) submit() {
	task, err := m.board.Submit()
	switch {
	case errors.Is(err, board.ErrEmptyName):
		m.formErr = "Task name is required."
		return
	case err != nil:
		slog.Error("create task failed", "error", err)
		m.status = "create failed: " + err.Error()
		return
	}
	m.formErr = ""
	m.nameInput.Blur()
	m.descInput.Blur()
	m.cursor = len(m.board.Tasks()) - 1
	m.status = fmt.Sprintf("Created task #%d", task.ID)
}

func (m Model) copySelected() tea.Cmd {
	all := m.board.Tasks()
	if m.cursor >= len(all) {
		return nil
	}
	name := all[m.cursor].Name
	copyFn := m.copyFn
	return func() tea.Msg {
		if err := copyFn(name); err != nil {
			return statusMsg("Failed to copy: " + err.Error())
		}
		return statusMsg("Copied: " + name)
	}
}

func (m *Model) resize() {
	m.layout.SetSize(m.width, m.bodyHeight())
	m.detail.Width = m.layout.RightWidth()
	m.detail.Height = m.layout.RightHeight()
	m.nameInput.Width = max(10, m.layout.RightWidth()-4)
	m.descInput.SetWidth(max(10, m.layout.RightWidth()-2))
	m.refreshDetail()
}

func (m Model) bodyHeight() int {
	return max(1, m.height-2)
}

func (m Model) View() string {
	header := HeaderStyle.Render(fmt.Sprintf("tasklane  %d tasks", len(m.board.Tasks())))
	var body string
	switch {
	case m.help.Visible:
		body = pkgtui.FitBlock(m.help.Render(m.keys, m.width), m.width, m.bodyHeight())
	case m.search.Visible():
		body = m.layout.Render(m.renderList(), m.search.View(m.layout.RightWidth()))
	default:
		body = m.layout.Render(m.renderList(), m.renderRightPane())
	}
	return strings.Join([]string{header, body, m.renderFooter()}, "\n")
}

func (m Model) renderRightPane() string {
	switch {
	case m.board.FormOpen():
		return m.renderForm()
	case m.board.DetailOpen():
		return m.detail.View()
	default:
		return LabelStyle.Render("Press n to create a task or enter to open one.")
	}
}

func (m Model) renderFooter() string {
	var keys []keyDesc
	if m.board.FormOpen() {
		keys = []keyDesc{{"tab", "field"}, {"space", "assign"}, {"ctrl+s", "create"}, {"esc", "cancel"}}
	} else {
		keys = []keyDesc{{"j/k", "move"}, {"enter", "open"}, {"n", "new"}, {"/", "search"}, {"?", "help"}}
	}
	line := renderKeyHelpLine(keys)
	if m.status != "" {
		line += "  " + SubtitleStyle.Render(m.status)
	}
	return FooterStyle.Render(line)
}
