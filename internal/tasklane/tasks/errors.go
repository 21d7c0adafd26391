package tasks

import "errors"

var (
	// ErrNotFound is returned when no task carries the requested id.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidTask is returned when a task is added with an id the store
	// never handed out, or with an id that is already taken.
	ErrInvalidTask = errors.New("invalid task")
)
