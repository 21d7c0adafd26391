package board

import (
	"fmt"

	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

// Candidate is a roster user paired with its checked state for one picker
// session.
type Candidate struct {
	User     tasks.User
	Assigned bool
}

// Picker presents every roster user as a checkable candidate for the draft.
// Checking only assigns; there is no path that unassigns.
type Picker struct {
	draft      *FormSession
	candidates []Candidate
}

// NewPicker builds one candidate per roster user, checked when the user is
// already on the draft.
func NewPicker(roster []tasks.User, draft *FormSession) *Picker {
	p := &Picker{draft: draft, candidates: make([]Candidate, 0, len(roster))}
	current := draft.Draft()
	for _, u := range roster {
		p.candidates = append(p.candidates, Candidate{User: u, Assigned: current.IsAssigned(u)})
	}
	return p
}

// ToggleAssign assigns the candidate at index to the draft. An already
// checked candidate is left alone, so repeated calls never duplicate.
func (p *Picker) ToggleAssign(index int) error {
	if index < 0 || index >= len(p.candidates) {
		return fmt.Errorf("%w: %d of %d", ErrCandidateRange, index, len(p.candidates))
	}
	c := &p.candidates[index]
	if c.Assigned {
		return nil
	}
	p.draft.Assign(c.User)
	c.Assigned = true
	return nil
}

func (p *Picker) Candidates() []Candidate {
	return append([]Candidate(nil), p.candidates...)
}

func (p *Picker) Len() int { return len(p.candidates) }
