package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SplitLayout puts the task list on the left and the detail or form pane on
// the right. Below minWidth the panes are stacked.
type SplitLayout struct {
	leftRatio float64
	width     int
	height    int
	minWidth  int
}

func NewSplitLayout(leftRatio float64) *SplitLayout {
	if leftRatio <= 0 || leftRatio >= 1 {
		leftRatio = 0.55
	}
	return &SplitLayout{leftRatio: leftRatio, minWidth: 100}
}

func (l *SplitLayout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *SplitLayout) IsStacked() bool { return l.width < l.minWidth }

func (l *SplitLayout) LeftWidth() int {
	if l.IsStacked() {
		return l.width
	}
	return int(float64(l.width)*l.leftRatio) - 2
}

func (l *SplitLayout) RightWidth() int {
	if l.IsStacked() {
		return l.width
	}
	return l.width - int(float64(l.width)*l.leftRatio) - 1
}

func (l *SplitLayout) LeftHeight() int {
	if l.IsStacked() {
		return l.height * 2 / 5
	}
	return l.height
}

func (l *SplitLayout) RightHeight() int {
	if l.IsStacked() {
		return l.height - l.LeftHeight() - 1
	}
	return l.height
}

// Render joins two pre-rendered panes into exactly width x height cells.
func (l *SplitLayout) Render(left, right string) string {
	if l.width <= 0 || l.height <= 0 {
		return ""
	}
	sep := lipgloss.NewStyle().Foreground(ColorBorder)
	if l.IsStacked() {
		return FitBlock(left, l.width, l.LeftHeight()) + "\n" +
			sep.Render(strings.Repeat("─", l.width)) + "\n" +
			FitBlock(right, l.width, l.RightHeight())
	}
	leftLines := strings.Split(FitBlock(left, l.LeftWidth(), l.height), "\n")
	rightLines := strings.Split(FitBlock(right, l.RightWidth(), l.height), "\n")
	bar := sep.Render("│")
	out := make([]string, l.height)
	for i := range out {
		out[i] = leftLines[i] + " " + bar + " " + rightLines[i]
	}
	return strings.Join(out, "\n")
}

// FitBlock pads or cuts content to exactly width x height display cells.
func FitBlock(content string, width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = FitWidth(line, width)
	}
	return strings.Join(lines, "\n")
}

// FitWidth truncates or pads line to width cells, ignoring escape codes.
func FitWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		line = ansi.Truncate(line, width, "")
		w = ansi.StringWidth(line)
	case w == width:
		return line
	}
	return line + strings.Repeat(" ", width-w)
}
