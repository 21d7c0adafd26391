package board

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

// FormSession owns one draft task and commits it to a store.
type FormSession struct {
	id    string
	draft tasks.Task
}

func NewFormSession() *FormSession {
	return &FormSession{id: uuid.New().String()}
}

// ID identifies the session in log output.
func (f *FormSession) ID() string { return f.id }

func (f *FormSession) UpdateName(text string) { f.draft.Name = text }

func (f *FormSession) UpdateDescription(text string) { f.draft.Description = text }

// Draft returns a copy of the task being composed.
func (f *FormSession) Draft() tasks.Task { return f.draft.Clone() }

// AssignedTo returns a copy of the draft's assignment list.
func (f *FormSession) AssignedTo() []tasks.User {
	return append([]tasks.User(nil), f.draft.AssignedTo...)
}

// Assign appends a fresh copy of u unless u is already assigned. The whole
// list is replaced, never edited in place.
func (f *FormSession) Assign(u tasks.User) bool {
	if f.draft.IsAssigned(u) {
		return false
	}
	next := make([]tasks.User, 0, len(f.draft.AssignedTo)+1)
	next = append(next, f.draft.AssignedTo...)
	next = append(next, tasks.User{Name: u.Name, Image: u.Image})
	f.draft.AssignedTo = next
	return true
}

// Validate reports form errors that should be shown inline.
func (f *FormSession) Validate() error {
	if strings.TrimSpace(f.draft.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Submit allocates the next id from store, stamps the due date with now,
// appends a copy of the draft and closes the form. The counter read, the
// advance and the append happen without yielding.
func (f *FormSession) Submit(store *tasks.Store, sel *Selection, now time.Time) (tasks.Task, error) {
	c := store.NextID()
	store.AdvanceCounter()

	f.draft.ID = c
	f.draft.DueDate = present.NowMillis(now)
	committed := f.draft.Clone()
	if err := store.AddTask(committed); err != nil {
		slog.Error("task commit rejected", "session", f.id, "id", c, "error", err)
		return tasks.Task{}, fmt.Errorf("submit draft %s: %w", f.id, err)
	}
	slog.Info("task created", "session", f.id, "id", c, "name", committed.Name, "assigned", len(committed.AssignedTo))
	sel.CloseForm()
	return committed, nil
}
