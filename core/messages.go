package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg drives one iteration of the run loop.
type FrameMsg struct {
	At time.Time
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return FrameMsg{At: t} })
}
