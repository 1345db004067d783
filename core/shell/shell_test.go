package shell

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/luagconsole/luag/core/terminal"
)

type recordingExecutor struct{ lines []string }

func (e *recordingExecutor) Execute(line string) { e.lines = append(e.lines, line) }

func newShell(opts Options) (*Shell, *recordingExecutor) {
	exec := &recordingExecutor{}
	return New(opts, terminal.NewBuffer(32), exec), exec
}

func TestSubmitMovesLineToHistoryAndExecutes(t *testing.T) {
	s, exec := newShell(Options{MaxLineLen: 16, HistorySize: 4})
	s.Input("mode d")
	s.Do(ActionSubmit)
	if !slices.Equal(exec.lines, []string{"mode d"}) {
		t.Fatalf("expected mode d to be executed, got %v", exec.lines)
	}
	if got := s.History().Entries(); !slices.Equal(got, []string{"mode d"}) {
		t.Fatalf("unexpected history %v", got)
	}
	if s.Line().Len() != 0 || s.Line().Cursor() != 0 {
		t.Fatalf("active line not reset")
	}
	if !strings.Contains(s.Output().Text(), Prompt+"mode d") {
		t.Fatalf("submitted line not echoed: %q", s.Output().Text())
	}
}

func TestHistoryEvictionThroughShell(t *testing.T) {
	s, _ := newShell(Options{MaxLineLen: 16, HistorySize: 4})
	for _, l := range []string{"a", "b", "c", "d", "e"} {
		s.Input(l)
		s.Submit()
	}
	if got := s.History().Entries(); !slices.Equal(got, []string{"c", "d", "e"}) {
		t.Fatalf("expected [c d e], got %v", got)
	}
}

func TestEditingActions(t *testing.T) {
	s, _ := newShell(Options{MaxLineLen: 16})
	s.Input("rn")
	s.Do(ActionLeft)
	s.Input("u")
	s.Do(ActionEnd)
	s.Input("x")
	s.Do(ActionBackspace)
	s.Do(ActionHome)
	s.Do(ActionDelete)
	if got := s.Line().String(); got != "un" {
		t.Fatalf("expected un, got %q", got)
	}
	s.Do(ActionClearLine)
	if s.Line().Len() != 0 {
		t.Fatalf("expected empty line")
	}
	if s.Do("jump") {
		t.Fatalf("unknown action should not be handled")
	}
}

func TestRenderOnlyWhenChanged(t *testing.T) {
	s, _ := newShell(Options{MaxLineLen: 16})
	first := s.Render(40, 5)
	if s.NeedsRedraw() {
		t.Fatalf("render should clear the redraw request")
	}
	if again := s.Render(40, 5); again != first {
		t.Fatalf("unchanged shell rendered differently")
	}
	s.Input("ver")
	if !s.NeedsRedraw() {
		t.Fatalf("input should request a redraw")
	}
	out := ansi.Strip(s.Render(40, 5))
	if !strings.HasSuffix(out, Prompt+"ver ") {
		t.Fatalf("prompt row missing typed text: %q", out)
	}
}

func TestFullLineInputDoesNotRequestRedraw(t *testing.T) {
	s, _ := newShell(Options{MaxLineLen: 2})
	s.Input("ab")
	s.Render(10, 2)
	s.Input("c")
	if s.NeedsRedraw() {
		t.Fatalf("dropped input should not request a redraw")
	}
}

func TestOutputWriteRequestsRedraw(t *testing.T) {
	s, _ := newShell(Options{})
	s.Render(10, 3)
	s.Write("Error:\nboom", true)
	if !s.NeedsRedraw() {
		t.Fatalf("output write should request a redraw")
	}
}

func TestCursorBlinks(t *testing.T) {
	s, _ := newShell(Options{})
	s.Render(10, 2)
	for i := 0; i < blinkFrames; i++ {
		s.Tick()
	}
	if !s.NeedsRedraw() {
		t.Fatalf("blink should request a redraw")
	}
}

func TestCloseResetsHistory(t *testing.T) {
	s, _ := newShell(Options{})
	s.Input("help")
	s.Submit()
	s.Close()
	if s.History().Len() != 0 {
		t.Fatalf("expected empty history after close")
	}
}

func TestLongLineScrollsWithinWidth(t *testing.T) {
	s, _ := newShell(Options{MaxLineLen: 80})
	line := strings.Repeat("abcdefghij", 6)
	s.Input(line)

	check := func(wantPrompt string) {
		t.Helper()
		rows := strings.Split(s.Render(20, 3), "\n")
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		for _, r := range rows {
			if w := ansi.StringWidth(r); w > 20 {
				t.Fatalf("row %q is %d cells wide", ansi.Strip(r), w)
			}
		}
		if got := ansi.Strip(rows[2]); !strings.HasPrefix(got, wantPrompt) {
			t.Fatalf("expected prompt row to start with %q, got %q", wantPrompt, got)
		}
	}

	check(Prompt + line[43:])
	s.Do(ActionHome)
	check(Prompt + line[:18])
}

func TestVisibleSpanKeepsCursorInView(t *testing.T) {
	cases := []struct {
		n, cur, cells      int
		wantStart, wantEnd int
	}{
		{n: 5, cur: 5, cells: 10, wantStart: 0, wantEnd: 5},
		{n: 10, cur: 10, cells: 10, wantStart: 1, wantEnd: 10},
		{n: 30, cur: 0, cells: 10, wantStart: 0, wantEnd: 10},
		{n: 30, cur: 15, cells: 10, wantStart: 6, wantEnd: 16},
	}
	for _, c := range cases {
		start, end := visibleSpan(c.n, c.cur, c.cells)
		if start != c.wantStart || end != c.wantEnd {
			t.Fatalf("visibleSpan(%d, %d, %d) = %d, %d; want %d, %d",
				c.n, c.cur, c.cells, start, end, c.wantStart, c.wantEnd)
		}
	}
}
