package core

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luagconsole/luag/core/session"
	"github.com/luagconsole/luag/core/shell"
)

// Engine is the script runtime that owns the frame in engine mode.
type Engine interface {
	Load(folder string, editor bool) error
	Running() bool
	Key(name string)
	Tick() error
	Render(width, height int) (string, error)
	Stop()
}

type Mode int

const (
	ModeShell Mode = iota
	ModeEngine
)

func (m Mode) String() string {
	if m == ModeEngine {
		return "engine"
	}
	return "shell"
}

func (m Mode) scope() string {
	if m == ModeEngine {
		return ScopeEngine
	}
	return ScopeShell
}

const DefaultFPS = 30

// Model is the console's run loop. Every FrameMsg polls input, ticks the
// active mode, checks the quit flag and renders the active mode.
type Model struct {
	session *session.State
	shell   *shell.Shell
	engine  Engine
	keys    *KeyRegistry

	input    []tea.KeyMsg
	interval time.Duration
	width    int
	height   int
	front    string
	frames   uint64
	quitting bool
}

func NewModel(s *session.State, sh *shell.Shell, eng Engine, keys *KeyRegistry, fps int) Model {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	return Model{
		session:  s,
		shell:    sh,
		engine:   eng,
		keys:     keys,
		interval: time.Second / time.Duration(fps),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("LuaG Console"), frameCmd(m.interval))
}

// Mode is derived from the session so that command handlers and the loop
// agree on it.
func (m Model) Mode() Mode {
	if m.session.EngineRunning {
		return ModeEngine
	}
	return ModeShell
}

func (m Model) Frames() uint64 { return m.frames }

func (m Model) Quitting() bool { return m.quitting }

// Close stops the engine and drops shell state.
func (m Model) Close() {
	if m.engine != nil && m.engine.Running() {
		m.engine.Stop()
	}
	m.session.EngineRunning = false
	m.shell.Close()
	log.Printf("console: closed after %d frames", m.frames)
}
