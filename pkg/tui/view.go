package tui

import "github.com/charmbracelet/bubbles/key"

// HelpBinding is a single row of the help overlay.
type HelpBinding struct {
	Key         string
	Description string
}

func HelpBindingFromKey(k key.Binding) HelpBinding {
	h := k.Help()
	return HelpBinding{Key: h.Key, Description: h.Desc}
}
