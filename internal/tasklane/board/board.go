package board

import (
	"log/slog"
	"time"

	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

// Roster supplies the users a picker offers. It is called once per picker.
type Roster interface {
	ListUsers() []tasks.User
}

// TaskLookup resolves the selected id for the detail view.
type TaskLookup interface {
	GetTask(id uint32) (tasks.Task, error)
}

type Options struct {
	// Lookup resolves details. Nil means the board's own store.
	Lookup      TaskLookup
	RequireName bool
	Clock       func() time.Time
}

// Board wires the store, the selection and the form session together. Each
// method applies its whole update before returning.
type Board struct {
	store       *tasks.Store
	sel         Selection
	roster      Roster
	lookup      TaskLookup
	requireName bool
	now         func() time.Time

	form   *FormSession
	picker *Picker
}

func New(store *tasks.Store, roster Roster, opts Options) *Board {
	b := &Board{
		store:       store,
		roster:      roster,
		lookup:      opts.Lookup,
		requireName: opts.RequireName,
		now:         opts.Clock,
	}
	if b.lookup == nil {
		b.lookup = store
	}
	if b.now == nil {
		b.now = time.Now
	}
	return b
}

func (b *Board) Tasks() []tasks.Task { return b.store.AllTasks() }

func (b *Board) NextID() uint32 { return b.store.NextID() }

func (b *Board) SelectedID() (uint32, bool) { return b.sel.SelectedID() }

func (b *Board) FormOpen() bool { return b.sel.FormOpen() }

func (b *Board) DetailOpen() bool { return b.sel.DetailOpen() }

func (b *Board) RequireName() bool { return b.requireName }

// Form returns the open form session, or nil.
func (b *Board) Form() *FormSession { return b.form }

// Picker returns the assignment picker of the open form, or nil.
func (b *Board) Picker() *Picker { return b.picker }

// OpenForm starts a fresh draft with a freshly fetched roster.
func (b *Board) OpenForm() {
	b.form = NewFormSession()
	b.picker = NewPicker(b.roster.ListUsers(), b.form)
	b.sel.OpenForm()
	slog.Debug("form opened", "session", b.form.ID(), "candidates", b.picker.Len())
}

// CloseForm discards the draft.
func (b *Board) CloseForm() {
	b.sel.CloseForm()
	b.dropForm()
}

func (b *Board) SelectTask(id uint32) {
	b.sel.SelectTask(id)
	b.dropForm()
}

func (b *Board) ClearSelection() {
	b.sel.ClearSelection()
}

// Submit commits the open draft. With RequireName set, an empty name is
// returned as ErrEmptyName and the form stays open.
func (b *Board) Submit() (tasks.Task, error) {
	if b.form == nil {
		return tasks.Task{}, ErrNoForm
	}
	if b.requireName {
		if err := b.form.Validate(); err != nil {
			return tasks.Task{}, err
		}
	}
	committed, err := b.form.Submit(b.store, &b.sel, b.now())
	if err != nil {
		return tasks.Task{}, err
	}
	b.dropForm()
	return committed, nil
}

// Detail resolves the selected task through the configured lookup.
func (b *Board) Detail() (tasks.Task, error) {
	id, ok := b.sel.SelectedID()
	if !ok {
		return tasks.Task{}, ErrNoSelection
	}
	return b.lookup.GetTask(id)
}

func (b *Board) dropForm() {
	b.form = nil
	b.picker = nil
}
