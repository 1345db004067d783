// Package shell is the console's terminal mode: the prompt line, the
// submitted-line history and the scrollback the commands write into.
package shell

import (
	"strings"

	"github.com/luagconsole/luag/core/history"
	"github.com/luagconsole/luag/core/lineedit"
	"github.com/luagconsole/luag/core/terminal"
)

const (
	Prompt = "> "

	// cursor blink half-period, in frames
	blinkFrames = 15
)

// Key actions understood by Do.
const (
	ActionSubmit    = "submit"
	ActionBackspace = "backspace"
	ActionDelete    = "delete"
	ActionLeft      = "cursor-left"
	ActionRight     = "cursor-right"
	ActionHome      = "line-start"
	ActionEnd       = "line-end"
	ActionClearLine = "clear-line"
	ActionClearOut  = "clear-output"
)

// Executor runs a submitted line.
type Executor interface {
	Execute(line string)
}

type Options struct {
	MaxLineLen  int
	HistorySize int
}

type Shell struct {
	line    *lineedit.Line
	history *history.Store
	out     *terminal.Buffer
	exec    Executor

	dirty        bool
	renderedRev  uint64
	frame        string
	frameW       int
	frameH       int
	ticks        int
	cursorHidden bool
}

func New(opts Options, out *terminal.Buffer, exec Executor) *Shell {
	return &Shell{
		line:    lineedit.New(opts.MaxLineLen),
		history: history.New(opts.HistorySize),
		out:     out,
		exec:    exec,
		dirty:   true,
	}
}

func (s *Shell) Line() *lineedit.Line { return s.line }

func (s *Shell) History() *history.Store { return s.history }

func (s *Shell) Output() *terminal.Buffer { return s.out }

func (s *Shell) Write(msg string, isErr bool) { s.out.Write(msg, isErr) }

func (s *Shell) NeedsRedraw() bool {
	return s.dirty || s.out.Revision() != s.renderedRev
}

func (s *Shell) askRedraw(changed bool) {
	if changed {
		s.dirty = true
	}
}

// Input receives a typed text fragment, possibly several runes long.
func (s *Shell) Input(text string) {
	s.askRedraw(s.line.Insert(text))
}

// Do performs a key action and reports whether it was one the shell knows.
func (s *Shell) Do(action string) bool {
	switch action {
	case ActionSubmit:
		s.Submit()
	case ActionBackspace:
		s.askRedraw(s.line.Backspace())
	case ActionDelete:
		s.askRedraw(s.line.Delete())
	case ActionLeft:
		s.askRedraw(s.line.Left())
	case ActionRight:
		s.askRedraw(s.line.Right())
	case ActionHome:
		s.askRedraw(s.line.Home())
	case ActionEnd:
		s.askRedraw(s.line.End())
	case ActionClearLine:
		s.askRedraw(s.line.Clear())
	case ActionClearOut:
		s.out.Clear()
	default:
		return false
	}
	s.showCursor()
	return true
}

// Submit moves the active line into history and runs it.
func (s *Shell) Submit() {
	entry := s.line.Take()
	s.history.Append(entry)
	text := string(entry)
	s.out.Write(Prompt+text, false)
	if s.exec != nil {
		s.exec.Execute(text)
	}
	s.dirty = true
}

func (s *Shell) Tick() {
	s.ticks++
	if s.ticks%blinkFrames == 0 {
		s.cursorHidden = !s.cursorHidden
		s.dirty = true
	}
}

func (s *Shell) showCursor() {
	s.ticks = 0
	if s.cursorHidden {
		s.cursorHidden = false
		s.dirty = true
	}
}

// Render redraws only when something changed since the last call.
func (s *Shell) Render(width, height int) string {
	if !s.NeedsRedraw() && width == s.frameW && height == s.frameH {
		return s.frame
	}
	s.frame = s.out.Render(width, height, s.renderPrompt(width))
	s.frameW, s.frameH = width, height
	s.renderedRev = s.out.Revision()
	s.dirty = false
	return s.frame
}

// renderPrompt draws the prompt row within width cells. A line longer than
// the row scrolls so that the cursor stays visible.
func (s *Shell) renderPrompt(width int) string {
	runes := s.line.Runes()
	cur := s.line.Cursor()
	start, end := visibleSpan(len(runes), cur, width-len(Prompt))

	var b strings.Builder
	b.WriteString(terminal.PromptStyle.Render(Prompt))
	b.WriteString(terminal.InputStyle.Render(string(runes[start:cur])))
	under := " "
	rest := ""
	if cur < len(runes) {
		under = string(runes[cur])
		rest = string(runes[cur+1 : end])
	}
	if s.cursorHidden {
		b.WriteString(terminal.InputStyle.Render(under))
	} else {
		b.WriteString(terminal.CursorStyle.Render(under))
	}
	b.WriteString(terminal.InputStyle.Render(rest))
	return b.String()
}

// visibleSpan returns the rune range [start, end) of a line of n runes that
// fits in cells cells together with the cursor cell at cur.
func visibleSpan(n, cur, cells int) (start, end int) {
	cells = max(1, cells)
	if n < cells {
		return 0, n
	}
	start = max(0, cur-cells+1)
	end = min(n, start+cells)
	return start, end
}

// Close drops the history.
func (s *Shell) Close() {
	s.history.Reset()
}
