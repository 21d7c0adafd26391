// Package board holds the interactive state of the task board: which task is
// open, whether the creation form is open, and the draft being composed.
package board

// Selection tracks the open task and the form flag. At most one of them is
// active after any call.
type Selection struct {
	selected *uint32
	formOpen bool
}

// OpenForm opens the form and drops the selection.
func (s *Selection) OpenForm() {
	s.formOpen = true
	s.selected = nil
}

// SelectTask opens id for viewing and closes the form. The id is not checked
// against the store; a missing task shows up when the detail is resolved.
func (s *Selection) SelectTask(id uint32) {
	s.selected = &id
	s.formOpen = false
}

// CloseForm leaves the selection as it is.
func (s *Selection) CloseForm() {
	s.formOpen = false
}

func (s *Selection) ClearSelection() {
	s.selected = nil
}

func (s *Selection) SelectedID() (uint32, bool) {
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

func (s *Selection) FormOpen() bool { return s.formOpen }

func (s *Selection) DetailOpen() bool { return s.selected != nil }
