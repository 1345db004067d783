// Package terminal is the shell's output surface: a bounded scrollback of
// written lines and the code that draws it above the prompt.
package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const DefaultScrollback = 256

type Line struct {
	Text  string
	IsErr bool
}

// Buffer keeps the newest written lines. IsErr only changes how a line is
// drawn.
type Buffer struct {
	lines    []Line
	max      int
	revision uint64
}

func NewBuffer(scrollback int) *Buffer {
	if scrollback <= 0 {
		scrollback = DefaultScrollback
	}
	return &Buffer{max: scrollback}
}

// Write appends msg, one Line per newline-separated part. An empty msg
// writes one blank line.
func (b *Buffer) Write(msg string, isErr bool) {
	for _, part := range strings.Split(msg, "\n") {
		b.lines = append(b.lines, Line{Text: part, IsErr: isErr})
	}
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
	b.revision++
}

func (b *Buffer) Clear() {
	b.lines = b.lines[:0]
	b.revision++
}

func (b *Buffer) Lines() []Line {
	return append([]Line(nil), b.lines...)
}

// Text returns every line joined with newlines, without styling.
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}

// Revision changes every time the buffer does.
func (b *Buffer) Revision() uint64 { return b.revision }

// Render draws the newest lines that fit in height-1 rows followed by the
// already styled prompt row. Every row is cut to width.
func (b *Buffer) Render(width, height int, prompt string) string {
	if height <= 0 {
		return ""
	}
	width = max(1, width)
	start := max(0, len(b.lines)-(height-1))
	rows := make([]string, 0, height)
	for _, l := range b.lines[start:] {
		text := ansi.Truncate(l.Text, width, "")
		if l.IsErr {
			rows = append(rows, errorStyle.Render(text))
		} else {
			rows = append(rows, outputStyle.Render(text))
		}
	}
	rows = append(rows, ansi.Truncate(prompt, width, ""))
	return strings.Join(rows, "\n")
}
