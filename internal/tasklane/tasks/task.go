// Package tasks holds the task model and the authoritative in-memory store.
package tasks

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// ParsePriority accepts the lower-case names used in seed files.
func ParsePriority(raw string) (Priority, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for p, name := range priorityNames {
		if name == needle {
			return p, nil
		}
	}
	return PriorityLow, fmt.Errorf("unknown priority %q", raw)
}

func (p Priority) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *Priority) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParsePriority(value.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type Status int

const (
	StatusNew Status = iota
	StatusPending
	StatusInProgress
	StatusComplete
)

var statusNames = map[Status]string{
	StatusNew:        "new",
	StatusPending:    "pending",
	StatusInProgress: "in_progress",
	StatusComplete:   "complete",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func ParseStatus(raw string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for s, name := range statusNames {
		if name == needle {
			return s, nil
		}
	}
	return StatusNew, fmt.Errorf("unknown status %q", raw)
}

func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseStatus(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// User is reference data. Two users are the same user when both name and
// image match.
type User struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

type Comment struct {
	User    string `yaml:"user"`
	Message string `yaml:"message"`
	Image   string `yaml:"image"`
}

type Task struct {
	ID          uint32    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	DueDate     int64     `yaml:"due_date"` // ms since epoch
	Priority    Priority  `yaml:"priority"`
	Status      Status    `yaml:"status"`
	AssignedTo  []User    `yaml:"assigned_to"`
	Comments    []Comment `yaml:"comments"`
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	out := t
	if t.AssignedTo != nil {
		out.AssignedTo = append([]User(nil), t.AssignedTo...)
	}
	if t.Comments != nil {
		out.Comments = append([]Comment(nil), t.Comments...)
	}
	return out
}

// IsAssigned reports whether u already appears in the assignment list.
func (t Task) IsAssigned(u User) bool {
	for _, assigned := range t.AssignedTo {
		if assigned == u {
			return true
		}
	}
	return false
}
