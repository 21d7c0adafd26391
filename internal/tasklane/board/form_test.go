package board

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

var submitTime = time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)

func sevenTaskStore() *tasks.Store {
	seed := make([]tasks.Task, 7)
	for i := range seed {
		seed[i] = tasks.Task{ID: uint32(i), Name: "seed"}
	}
	return tasks.SeedStore(seed)
}

func TestSubmitAllocatesCounterValue(t *testing.T) {
	store := sevenTaskStore()
	var sel Selection
	sel.OpenForm()
	form := NewFormSession()
	form.UpdateName("X")

	task, err := form.Submit(store, &sel, submitTime)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if task.ID != 7 {
		t.Fatalf("expected id 7, got %d", task.ID)
	}
	if store.NextID() != 8 {
		t.Fatalf("expected counter 8, got %d", store.NextID())
	}
	if sel.FormOpen() {
		t.Fatalf("expected form closed after submit")
	}
	got, err := store.FindByID(7)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "X" || got.DueDate != submitTime.UnixMilli() {
		t.Fatalf("unexpected committed task: %+v", got)
	}
	if got.Priority != tasks.PriorityLow || got.Status != tasks.StatusNew {
		t.Fatalf("expected default priority/status, got %s/%s", got.Priority, got.Status)
	}
}

func TestSubmitIDsUniqueAndCounterMonotonic(t *testing.T) {
	store := sevenTaskStore()
	var sel Selection
	for i := 0; i < 25; i++ {
		before := store.NextID()
		sel.OpenForm()
		if _, err := NewFormSession().Submit(store, &sel, submitTime); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
		if store.NextID() != before+1 {
			t.Fatalf("submit %d: counter moved from %d to %d", i, before, store.NextID())
		}
	}
	seen := map[uint32]bool{}
	for _, task := range store.AllTasks() {
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
	if store.Len() != 32 {
		t.Fatalf("expected 32 tasks, got %d", store.Len())
	}
}

func TestSubmitCommitsCopyOfDraft(t *testing.T) {
	store := sevenTaskStore()
	var sel Selection
	form := NewFormSession()
	form.Assign(derik)
	if _, err := form.Submit(store, &sel, submitTime); err != nil {
		t.Fatal(err)
	}
	form.Assign(fatima)
	form.UpdateName("edited after commit")
	got, _ := store.FindByID(7)
	if len(got.AssignedTo) != 1 || got.Name != "" {
		t.Fatalf("committed task changed with the draft: %+v", got)
	}
}

func TestSubmitAcceptsEmptyFields(t *testing.T) {
	store := sevenTaskStore()
	var sel Selection
	if _, err := NewFormSession().Submit(store, &sel, submitTime); err != nil {
		t.Fatalf("expected empty draft accepted, got %v", err)
	}
}

func TestValidateEmptyName(t *testing.T) {
	form := NewFormSession()
	form.UpdateName("   ")
	if err := form.Validate(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	form.UpdateName("Ship")
	if err := form.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormSessionIDsDiffer(t *testing.T) {
	a, b := NewFormSession(), NewFormSession()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("expected distinct non-empty session ids, got %q and %q", a.ID(), b.ID())
	}
	if _, err := uuid.Parse(a.ID()); err != nil {
		t.Fatalf("expected a full uuid session id, got %q: %v", a.ID(), err)
	}
}

func TestAssignReplacesList(t *testing.T) {
	form := NewFormSession()
	form.Assign(derik)
	before := form.Draft()
	form.Assign(fatima)
	if len(before.AssignedTo) != 1 {
		t.Fatalf("earlier draft copy changed")
	}
	if form.Assign(derik) {
		t.Fatalf("expected second assign of Derik to be refused")
	}
}
