package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	pkgtui "github.com/mistakeknot/tasklane/pkg/tui"
)

func TestViewListsSeededTasks(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	out := m.View()
	if !strings.Contains(out, "7 tasks") {
		t.Fatalf("expected task count in header")
	}
	if !strings.Contains(out, "Design login screen") {
		t.Fatalf("expected first task in list")
	}
	if !strings.Contains(out, "Press n to create a task") {
		t.Fatalf("expected empty right pane hint")
	}
}

func TestEnterOpensDetail(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("j"), enter)
	id, ok := m.board.SelectedID()
	if !ok || id != 1 {
		t.Fatalf("expected task 1 selected, got %d %v", id, ok)
	}
	out := m.View()
	if !strings.Contains(out, "Write unit tests for task API") {
		t.Fatalf("expected detail title in view")
	}
	if !strings.Contains(out, "in progress") {
		t.Fatalf("expected status label in detail")
	}
}

func TestDetailShowsComments(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("G"), runes("k"), enter)
	if id, _ := m.board.SelectedID(); id != 5 {
		t.Fatalf("expected task 5 selected, got %d", id)
	}
	out := ansi.Strip(m.View())
	for _, want := range []string{
		"Should reviews be visible",
		"only after moderation?",
		"Ok, thanks, I'll wait for your reply",
		"Due Date 17 Jun 2025",
		"static/person3.png",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in detail pane:\n%s", want, out)
		}
	}
}

func TestDetailWrapsToPaneWidth(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("G"), runes("k"), enter)
	limit := m.layout.RightWidth()
	task, err := m.board.Detail()
	if err != nil {
		t.Fatal(err)
	}
	// the description is laid out by glamour at its own width
	desc := map[string]bool{}
	for _, line := range strings.Split(m.md.Render(task.Description, limit-2), "\n") {
		desc[line] = true
	}
	for i, line := range strings.Split(m.renderDetail(), "\n") {
		if desc[line] {
			continue
		}
		if w := ansi.StringWidth(line); w > limit {
			t.Fatalf("line %d is %d cells wide, pane is %d: %q", i, w, limit, ansi.Strip(line))
		}
	}
}

func TestFormAndDetailAreExclusive(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, enter)
	if !m.board.DetailOpen() {
		t.Fatalf("expected detail open")
	}
	m = send(t, m, runes("n"))
	if !m.board.FormOpen() || m.board.DetailOpen() {
		t.Fatalf("expected only the form open after n")
	}
	m = send(t, m, esc, enter)
	if m.board.FormOpen() || !m.board.DetailOpen() {
		t.Fatalf("expected only the detail open after esc, enter")
	}
}

func TestCreateTaskFlow(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("n"), runes("Ship it"), tab, runes("Details here"), tab)

	m = send(t, m, space, space, runes("j"), space)
	draft := m.board.Form().Draft()
	if len(draft.AssignedTo) != 2 {
		t.Fatalf("expected 2 assigned users, got %v", draft.AssignedTo)
	}
	if draft.AssignedTo[0].Name != "Derik" || draft.AssignedTo[1].Name != "Fatima" {
		t.Fatalf("expected [Derik Fatima], got %v", draft.AssignedTo)
	}
	if !strings.Contains(m.View(), "[x] Derik") {
		t.Fatalf("expected Derik checked in picker")
	}

	m = send(t, m, submit)
	if m.board.FormOpen() {
		t.Fatalf("expected form closed after submit")
	}
	all := m.board.Tasks()
	if len(all) != 8 {
		t.Fatalf("expected 8 tasks, got %d", len(all))
	}
	created := all[7]
	if created.ID != 7 || created.Name != "Ship it" || created.Description != "Details here" {
		t.Fatalf("unexpected created task %+v", created)
	}
	if created.Priority != tasks.PriorityLow || created.Status != tasks.StatusNew {
		t.Fatalf("expected default priority and status")
	}
	if created.DueDate != fixedNow.UnixMilli() {
		t.Fatalf("expected due date stamped at submit time")
	}
	if m.board.NextID() != 8 {
		t.Fatalf("expected counter 8, got %d", m.board.NextID())
	}
	if !strings.Contains(m.View(), "Created task #7") {
		t.Fatalf("expected status line")
	}
}

func TestCreatedTaskViewableThroughStore(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("n"), runes("Fresh"), submit, enter)
	if id, _ := m.board.SelectedID(); id != 7 {
		t.Fatalf("expected created task selected, got %d", id)
	}
	if strings.Contains(m.View(), "not found") {
		t.Fatalf("expected created task to resolve through the store")
	}
}

func TestCreatedTaskMissingFromSeedLookup(t *testing.T) {
	m, _ := newTestModel(t, false, true)
	m = send(t, m, runes("n"), runes("Fresh"), submit, enter)
	if !strings.Contains(m.View(), "Task 7 not found") {
		t.Fatalf("expected graceful not-found state")
	}
}

func TestRequireNameShowsInlineError(t *testing.T) {
	m, _ := newTestModel(t, true, false)
	m = send(t, m, runes("n"), submit)
	if !m.board.FormOpen() {
		t.Fatalf("expected form to stay open")
	}
	if !strings.Contains(m.View(), "Task name is required.") {
		t.Fatalf("expected inline validation message")
	}
	m = send(t, m, runes("Named"), submit)
	if m.board.FormOpen() {
		t.Fatalf("expected submit to succeed once named")
	}
}

func TestEscDiscardsDraft(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("n"), runes("Draft"), esc)
	if m.board.FormOpen() || len(m.board.Tasks()) != 7 {
		t.Fatalf("expected form closed without creating a task")
	}
	m = send(t, m, runes("n"))
	if m.board.Form().Draft().Name != "" {
		t.Fatalf("expected a fresh draft")
	}
}

func TestSearchSelectsTask(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("/"), runes("wishlist"), enter)
	id, ok := m.board.SelectedID()
	if !ok || id != 6 {
		t.Fatalf("expected wishlist task selected, got %d %v", id, ok)
	}
	if m.cursor != 6 {
		t.Fatalf("expected cursor moved to the selection, got %d", m.cursor)
	}
}

func TestSearchEscLeavesSelection(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("/"), runes("login"), esc)
	if m.board.DetailOpen() {
		t.Fatalf("expected no selection after esc")
	}
}

func TestCopyUsesClipboard(t *testing.T) {
	m, clip := newTestModel(t, false, false)
	_, cmd := m.Update(runes("y"))
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	msg := cmd()
	if clip.text != "Design login screen" {
		t.Fatalf("expected task name copied, got %q", clip.text)
	}
	m = send(t, m, msg)
	if !strings.Contains(m.View(), "Copied: Design login screen") {
		t.Fatalf("expected copy status")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	_, cmd := m.Update(runes("?"))
	if cmd == nil {
		t.Fatalf("expected help command")
	}
	if _, ok := cmd().(pkgtui.ToggleHelpMsg); !ok {
		t.Fatalf("expected ToggleHelpMsg")
	}
	m = send(t, m, pkgtui.ToggleHelpMsg{})
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("expected help overlay")
	}
	m = send(t, m, esc)
	if strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("expected help overlay closed")
	}
}

func TestQuestionMarkTypesIntoForm(t *testing.T) {
	m, _ := newTestModel(t, false, false)
	m = send(t, m, runes("n"), runes("why?"))
	if got := m.board.Form().Draft().Name; got != "why?" {
		t.Fatalf("expected ? typed into the name, got %q", got)
	}
}
