package tasks

import (
	"fmt"
	"log/slog"
)

// Store owns the ordered task list and the id counter. It is not safe for
// concurrent use; every caller runs on the UI event loop.
type Store struct {
	tasks   []Task
	index   map[uint32]int
	counter uint32
}

// NewStore seeds a store with tasks and an explicit counter value.
func NewStore(seed []Task, counter uint32) *Store {
	s := &Store{index: make(map[uint32]int, len(seed)), counter: counter}
	for _, t := range seed {
		if _, dup := s.index[t.ID]; dup {
			slog.Warn("dropping seeded task with duplicate id", "id", t.ID, "name", t.Name)
			continue
		}
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t.Clone())
		if t.ID >= s.counter {
			s.counter = t.ID + 1
		}
	}
	if s.counter != counter {
		slog.Warn("seeded ids exceed counter, raising it", "requested", counter, "counter", s.counter)
	}
	return s
}

// SeedStore initializes the counter to the number of seeded tasks.
func SeedStore(seed []Task) *Store {
	return NewStore(seed, uint32(len(seed)))
}

// AddTask appends a copy of task. The id must have been handed out by the
// counter and must not be taken.
func (s *Store) AddTask(task Task) error {
	if task.ID >= s.counter {
		return fmt.Errorf("%w: id %d was never allocated (next is %d)", ErrInvalidTask, task.ID, s.counter)
	}
	if _, ok := s.index[task.ID]; ok {
		return fmt.Errorf("%w: duplicate id %d", ErrInvalidTask, task.ID)
	}
	s.index[task.ID] = len(s.tasks)
	s.tasks = append(s.tasks, task.Clone())
	slog.Debug("task added", "id", task.ID, "name", task.Name, "count", len(s.tasks))
	return nil
}

// AllTasks returns copies of every task in insertion order.
func (s *Store) AllTasks() []Task {
	out := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (s *Store) FindByID(id uint32) (Task, error) {
	i, ok := s.index[id]
	if !ok {
		return Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.tasks[i].Clone(), nil
}

// GetTask lets the store stand in wherever a task lookup is expected.
func (s *Store) GetTask(id uint32) (Task, error) {
	return s.FindByID(id)
}

func (s *Store) NextID() uint32 { return s.counter }

func (s *Store) AdvanceCounter() { s.counter++ }

func (s *Store) Len() int { return len(s.tasks) }
