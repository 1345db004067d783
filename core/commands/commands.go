// Package commands maps shell command names to their handlers and runs
// submitted lines against that table.
package commands

import (
	"fmt"
	"strings"

	"github.com/luagconsole/luag/core/session"
)

type Command struct {
	Name        string
	Aliases     []string
	Description string
	// Disabled reports whether the command may not run in the current
	// session, and the message to show instead.
	Disabled func(s *session.State) (bool, string)
	Run      func(d *Dispatcher, args []string)
}

// Table is built once and never changes afterwards. Names and aliases share
// one lookup map and are stored lowercase.
type Table struct {
	commands []Command
	byName   map[string]int
}

func NewTable(cmds []Command) (*Table, error) {
	t := &Table{
		commands: make([]Command, 0, len(cmds)),
		byName:   make(map[string]int, len(cmds)*2),
	}
	for _, c := range cmds {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("command with empty name")
		}
		idx := len(t.commands)
		for _, name := range append([]string{c.Name}, c.Aliases...) {
			key := strings.ToLower(name)
			if prev, ok := t.byName[key]; ok {
				return nil, fmt.Errorf("command %q: name %q already used by %q", c.Name, key, t.commands[prev].Name)
			}
			t.byName[key] = idx
		}
		t.commands = append(t.commands, c)
	}
	return t, nil
}

// Lookup expects an already lowercased name.
func (t *Table) Lookup(name string) (Command, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return Command{}, false
	}
	return t.commands[idx], true
}

// Commands returns the table in registration order.
func (t *Table) Commands() []Command {
	return append([]Command(nil), t.commands...)
}

// Names returns every name and alias the table answers to.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.byName))
	for _, c := range t.commands {
		out = append(out, strings.ToLower(c.Name))
		for _, a := range c.Aliases {
			out = append(out, strings.ToLower(a))
		}
	}
	return out
}

func developerOnly(s *session.State) (bool, string) {
	if s.DeveloperMode {
		return false, ""
	}
	return true, "Error:\nonly developers can\nuse this command"
}
