package core

import "github.com/luagconsole/luag/core/shell"

const (
	ScopeShell  = "shell"
	ScopeEngine = "engine"

	ActionForceQuit  = "force-quit"
	ActionStopEngine = "stop-engine"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionForceQuit, Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: ActionStopEngine, Scopes: []string{ScopeEngine}},
		{Keys: []string{"enter"}, Action: shell.ActionSubmit, Scopes: []string{ScopeShell}},
		{Keys: []string{"backspace"}, Action: shell.ActionBackspace, Scopes: []string{ScopeShell}},
		{Keys: []string{"delete"}, Action: shell.ActionDelete, Scopes: []string{ScopeShell}},
		{Keys: []string{"left", "ctrl+b"}, Action: shell.ActionLeft, Scopes: []string{ScopeShell}},
		{Keys: []string{"right", "ctrl+f"}, Action: shell.ActionRight, Scopes: []string{ScopeShell}},
		{Keys: []string{"home", "ctrl+a"}, Action: shell.ActionHome, Scopes: []string{ScopeShell}},
		{Keys: []string{"end", "ctrl+e"}, Action: shell.ActionEnd, Scopes: []string{ScopeShell}},
		{Keys: []string{"ctrl+u"}, Action: shell.ActionClearLine, Scopes: []string{ScopeShell}},
		{Keys: []string{"ctrl+l"}, Action: shell.ActionClearOut, Scopes: []string{ScopeShell}},
	}
}
