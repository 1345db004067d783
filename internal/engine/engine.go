// Package engine runs a game folder's Lua scripts while the console is in
// engine mode.
//
// A game defines any of the globals init, tick and render. Scripts draw by
// calling write(text) from render, once per row, and can use:
//
//	cls()          drop everything written so far this frame
//	btn(name)      true if the key called name was pressed this frame
//	editor()       true when the folder was loaded by the edit command
//	screen_size()  width and height of the display, in cells
//	exit()         return to the shell after the current tick
package engine

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const DefaultEntry = "scripts/main.lua"

var ErrNotRunning = errors.New("engine: not running")

type Engine struct {
	entry string

	state   *lua.State
	running bool
	folder  string
	editor  bool
	exiting bool

	pressed map[string]bool
	rows    []string
	last    string
	width   int
	height  int
}

func New(entry string) *Engine {
	if entry == "" {
		entry = DefaultEntry
	}
	return &Engine{entry: entry, pressed: map[string]bool{}}
}

func (e *Engine) Running() bool { return e.running }

// Load starts a fresh interpreter on folder, runs its entry script and then
// its init function. On failure the engine stays stopped.
func (e *Engine) Load(folder string, editor bool) error {
	if e.running {
		e.Stop()
	}
	l := lua.NewState()
	lua.OpenLibraries(l)
	e.register(l)

	e.state = l
	e.folder = folder
	e.editor = editor
	e.exiting = false
	e.last = ""
	clear(e.pressed)

	path := filepath.Join(folder, filepath.FromSlash(e.entry))
	if err := lua.DoFile(l, path); err != nil {
		e.state = nil
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := e.call("init"); err != nil {
		e.state = nil
		return fmt.Errorf("init %s: %w", folder, err)
	}
	e.running = true
	log.Printf("engine: loaded %s (editor=%v)", folder, editor)
	return nil
}

// Key records a key press for the next tick.
func (e *Engine) Key(name string) {
	if !e.running {
		return
	}
	e.pressed[name] = true
}

// Tick runs the game's tick function. A script error stops the engine and
// is returned.
func (e *Engine) Tick() error {
	if !e.running {
		return ErrNotRunning
	}
	err := e.call("tick")
	clear(e.pressed)
	if err != nil {
		e.Stop()
		return fmt.Errorf("tick: %w", err)
	}
	if e.exiting {
		e.Stop()
	}
	return nil
}

// Render runs the game's render function and returns what it wrote. A
// stopped engine keeps showing its last frame.
func (e *Engine) Render(width, height int) (string, error) {
	if !e.running {
		return e.last, nil
	}
	e.width, e.height = width, height
	e.rows = e.rows[:0]
	if err := e.call("render"); err != nil {
		e.Stop()
		return e.last, fmt.Errorf("render: %w", err)
	}
	if height > 0 && len(e.rows) > height {
		e.rows = e.rows[:height]
	}
	e.last = strings.Join(e.rows, "\n")
	return e.last, nil
}

// Stop drops the interpreter. Calling it on a stopped engine is harmless.
func (e *Engine) Stop() {
	if e.running {
		log.Printf("engine: stopped %s", e.folder)
	}
	e.running = false
	e.exiting = false
	e.state = nil
	clear(e.pressed)
}

func (e *Engine) call(name string) error {
	e.state.Global(name)
	if !e.state.IsFunction(-1) {
		e.state.Pop(1)
		return nil
	}
	return e.state.ProtectedCall(0, 0, 0)
}

func (e *Engine) register(l *lua.State) {
	l.Register("cls", func(l *lua.State) int {
		e.rows = e.rows[:0]
		return 0
	})
	l.Register("write", func(l *lua.State) int {
		text := lua.CheckString(l, 1)
		e.rows = append(e.rows, strings.Split(text, "\n")...)
		return 0
	})
	l.Register("btn", func(l *lua.State) int {
		l.PushBoolean(e.pressed[lua.CheckString(l, 1)])
		return 1
	})
	l.Register("editor", func(l *lua.State) int {
		l.PushBoolean(e.editor)
		return 1
	})
	l.Register("screen_size", func(l *lua.State) int {
		l.PushInteger(e.width)
		l.PushInteger(e.height)
		return 2
	})
	l.Register("exit", func(l *lua.State) int {
		e.exiting = true
		return 0
	})
}
