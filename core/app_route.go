package core

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		// keys wait for the next frame so none is lost across a mode switch
		m.input = append(m.input, msg)
		return m, nil
	case FrameMsg:
		return m.frame()
	}
	return m, nil
}

func (m Model) frame() (tea.Model, tea.Cmd) {
	m.frames++
	mode := m.Mode()

	m.pollInput(mode)
	m.tick(mode)

	var cmd tea.Cmd
	if m.session.ShouldQuit {
		m.quitting = true
		cmd = tea.Quit
	}

	m.render(mode)
	m.settle()

	if cmd == nil {
		cmd = frameCmd(m.interval)
	}
	return m, cmd
}

func (m *Model) pollInput(mode Mode) {
	pending := m.input
	m.input = nil
	for _, key := range pending {
		m.routeKey(mode, key)
	}
}

func (m *Model) routeKey(mode Mode, key tea.KeyMsg) {
	scope := mode.scope()
	if m.keys.IsAction(key, ActionForceQuit, scope) {
		m.session.ShouldQuit = true
		return
	}
	if mode == ModeEngine {
		if m.keys.IsAction(key, ActionStopEngine, scope) {
			m.engine.Stop()
			return
		}
		if !key.Paste {
			m.engine.Key(key.String())
		}
		return
	}
	if action, ok := m.keys.Action(key, scope); ok && m.shell.Do(action) {
		return
	}
	switch key.Type {
	case tea.KeyRunes:
		if !key.Alt {
			m.shell.Input(string(key.Runes))
		}
	case tea.KeySpace:
		m.shell.Input(" ")
	}
}

func (m *Model) tick(mode Mode) {
	if mode == ModeShell {
		m.shell.Tick()
		return
	}
	if !m.engine.Running() {
		return
	}
	if err := m.engine.Tick(); err != nil {
		m.engineFailed(err)
	}
}

func (m *Model) render(mode Mode) {
	var back string
	if mode == ModeEngine {
		frame, err := m.engine.Render(m.width, m.height)
		if err != nil {
			m.engineFailed(err)
		}
		back = frame
	} else {
		back = m.shell.Render(m.width, m.height)
	}
	m.front = back
}

// settle applies mode transitions requested during this frame. They take
// effect from the next frame on.
func (m *Model) settle() {
	if req, ok := m.session.TakeLoadRequest(); ok {
		if err := m.engine.Load(req.Folder, req.Editor); err != nil {
			log.Printf("console: load %s: %v", req.Folder, err)
			m.session.ActiveGameFolder = ""
			m.shell.Write(fmt.Sprintf("Error:\ncould not load\n'%s'", req.Folder), true)
			m.shell.Write("", false)
		} else {
			log.Printf("console: shell -> engine (%s)", req.Folder)
			m.session.EngineRunning = true
		}
	}
	if m.session.EngineRunning && !m.engine.Running() {
		log.Printf("console: engine -> shell")
		m.session.EngineRunning = false
	}
}

func (m *Model) engineFailed(err error) {
	log.Printf("console: engine error: %v", err)
	m.shell.Write("Error:\n"+err.Error(), true)
	m.shell.Write("", false)
}
