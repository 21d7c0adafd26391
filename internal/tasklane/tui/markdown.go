package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

func renderMarkdown(input string, width int) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle("dark"),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(input)
}

type markdownKey struct {
	text  string
	width int
}

// MarkdownCache keeps rendered descriptions so re-renders stay cheap.
type MarkdownCache struct {
	entries map[markdownKey]string
}

func NewMarkdownCache() *MarkdownCache {
	return &MarkdownCache{entries: map[markdownKey]string{}}
}

// Render falls back to the raw text when glamour fails.
func (c *MarkdownCache) Render(text string, width int) string {
	k := markdownKey{text: text, width: width}
	if out, ok := c.entries[k]; ok {
		return out
	}
	out, err := renderMarkdown(text, width)
	if err != nil {
		out = text
	}
	out = strings.Trim(out, "\n")
	c.entries[k] = out
	return out
}
