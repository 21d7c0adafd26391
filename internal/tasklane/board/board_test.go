package board

import (
	"errors"
	"testing"
	"time"

	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

type stubRoster struct {
	users []tasks.User
	calls int
}

func (r *stubRoster) ListUsers() []tasks.User {
	r.calls++
	return append([]tasks.User(nil), r.users...)
}

type seedOnly struct{ seed []tasks.Task }

func (s seedOnly) GetTask(id uint32) (tasks.Task, error) {
	for _, t := range s.seed {
		if t.ID == id {
			return t, nil
		}
	}
	return tasks.Task{}, tasks.ErrNotFound
}

func newTestBoard(opts Options) (*Board, *stubRoster) {
	roster := &stubRoster{users: []tasks.User{derik, fatima}}
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return submitTime }
	}
	return New(sevenTaskStore(), roster, opts), roster
}

func TestBoardOpenFormBuildsPickerFromRoster(t *testing.T) {
	b, roster := newTestBoard(Options{})
	b.SelectTask(2)
	b.OpenForm()
	if !b.FormOpen() || b.DetailOpen() {
		t.Fatalf("expected only the form open")
	}
	if b.Form() == nil || b.Picker() == nil {
		t.Fatalf("expected form session and picker")
	}
	if b.Picker().Len() != 2 || roster.calls != 1 {
		t.Fatalf("expected roster fetched once with 2 users, got %d calls", roster.calls)
	}
	b.OpenForm()
	if roster.calls != 2 {
		t.Fatalf("expected roster refetched for a new picker")
	}
}

func TestBoardSelectDropsDraft(t *testing.T) {
	b, _ := newTestBoard(Options{})
	b.OpenForm()
	b.Form().UpdateName("half written")
	b.SelectTask(1)
	if b.Form() != nil || b.Picker() != nil {
		t.Fatalf("expected draft discarded")
	}
	b.OpenForm()
	if b.Form().Draft().Name != "" {
		t.Fatalf("expected a fresh draft")
	}
}

func TestBoardSubmitFlow(t *testing.T) {
	b, _ := newTestBoard(Options{})
	b.OpenForm()
	b.Form().UpdateName("X")
	b.Form().UpdateDescription("details")
	if err := b.Picker().ToggleAssign(1); err != nil {
		t.Fatal(err)
	}
	task, err := b.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if task.ID != 7 || b.NextID() != 8 {
		t.Fatalf("expected id 7 and counter 8, got %d and %d", task.ID, b.NextID())
	}
	if b.FormOpen() || b.Form() != nil {
		t.Fatalf("expected form closed")
	}
	all := b.Tasks()
	last := all[len(all)-1]
	if last.Name != "X" || len(last.AssignedTo) != 1 || last.AssignedTo[0] != fatima {
		t.Fatalf("unexpected committed task %+v", last)
	}
}

func TestBoardSubmitWithoutForm(t *testing.T) {
	b, _ := newTestBoard(Options{})
	if _, err := b.Submit(); !errors.Is(err, ErrNoForm) {
		t.Fatalf("expected ErrNoForm, got %v", err)
	}
}

func TestBoardRequireNameKeepsFormOpen(t *testing.T) {
	b, _ := newTestBoard(Options{RequireName: true})
	b.OpenForm()
	before := b.NextID()
	if _, err := b.Submit(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if !b.FormOpen() || b.Form() == nil {
		t.Fatalf("expected form still open")
	}
	if b.NextID() != before {
		t.Fatalf("failed validation must not consume an id")
	}
}

func TestBoardDetailFromStoreFindsCreatedTask(t *testing.T) {
	b, _ := newTestBoard(Options{})
	b.OpenForm()
	b.Form().UpdateName("fresh")
	task, err := b.Submit()
	if err != nil {
		t.Fatal(err)
	}
	b.SelectTask(task.ID)
	got, err := b.Detail()
	if err != nil {
		t.Fatalf("expected created task to be viewable, got %v", err)
	}
	if got.Name != "fresh" {
		t.Fatalf("unexpected detail %+v", got)
	}
}

func TestBoardDetailFromSeedMissesCreatedTask(t *testing.T) {
	store := sevenTaskStore()
	b := New(store, &stubRoster{}, Options{
		Lookup: seedOnly{seed: store.AllTasks()},
		Clock:  func() time.Time { return submitTime },
	})
	b.OpenForm()
	task, err := b.Submit()
	if err != nil {
		t.Fatal(err)
	}
	b.SelectTask(task.ID)
	if _, err := b.Detail(); !errors.Is(err, tasks.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from seed lookup, got %v", err)
	}
	b.SelectTask(3)
	if _, err := b.Detail(); err != nil {
		t.Fatalf("expected seeded task found, got %v", err)
	}
}

func TestBoardDetailWithoutSelection(t *testing.T) {
	b, _ := newTestBoard(Options{})
	if _, err := b.Detail(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestBoardCloseFormKeepsSelectionEmpty(t *testing.T) {
	b, _ := newTestBoard(Options{})
	b.OpenForm()
	b.CloseForm()
	if b.FormOpen() || b.DetailOpen() {
		t.Fatalf("expected nothing open")
	}
}
