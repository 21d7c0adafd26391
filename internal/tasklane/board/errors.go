package board

import "errors"

var (
	ErrCandidateRange = errors.New("candidate index out of range")
	ErrEmptyName      = errors.New("task name is required")
	ErrNoForm         = errors.New("no task form is open")
)

var ErrNoSelection = errors.New("no task selected")
