package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorText   lipgloss.Color = "#cdd6f4"
	colorAccent lipgloss.Color = "#89b4fa"
	colorError  lipgloss.Color = "#f38ba8"
	colorCursor lipgloss.Color = "#f5e0dc"
)

var (
	outputStyle = lipgloss.NewStyle().Foreground(colorText)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)

	PromptStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	InputStyle  = lipgloss.NewStyle().Foreground(colorText)
	CursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(colorCursor)
)
