package commands

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/luagconsole/luag/core/session"
)

// Output receives everything a command prints.
type Output interface {
	Write(msg string, isErr bool)
	Clear()
}

// Extractor unpacks a cartridge bundle. An empty dest lets the extractor
// pick a folder; the folder actually used is returned.
type Extractor interface {
	Extract(bundle, dest string) (string, error)
}

// Opener shows a folder in the platform file browser.
type Opener interface {
	Open(path string) error
}

type Paths struct {
	Resource   string
	UserData   string
	Cartridges string
}

type Deps struct {
	Session   *session.State
	Out       Output
	Archive   Extractor
	Opener    Opener
	Paths     Paths
	Version   string
	Copyright string
	// Commands defaults to Builtins().
	Commands []Command
}

const suggestDistance = 2

type Dispatcher struct {
	table     *Table
	session   *session.State
	out       Output
	archive   Extractor
	opener    Opener
	paths     Paths
	version   string
	copyright string
	fold      cases.Caser

	editorFolder string
}

func New(deps Deps) (*Dispatcher, error) {
	if deps.Session == nil || deps.Out == nil {
		return nil, errors.New("commands: session and output are required")
	}
	cmds := deps.Commands
	if cmds == nil {
		cmds = Builtins()
	}
	table, err := NewTable(cmds)
	if err != nil {
		return nil, fmt.Errorf("commands: %w", err)
	}
	return &Dispatcher{
		table:     table,
		session:   deps.Session,
		out:       deps.Out,
		archive:   deps.Archive,
		opener:    deps.Opener,
		paths:     deps.Paths,
		version:   deps.Version,
		copyright: deps.Copyright,
		fold:      cases.Lower(language.Und),
	}, nil
}

func (d *Dispatcher) Table() *Table { return d.table }

// Execute runs one submitted line. Handler failures end up in the output,
// never in the caller. A line without tokens does nothing.
func (d *Dispatcher) Execute(line string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return
	}
	name := d.fold.String(tokens[0])
	args := tokens[1:]

	if cmd, ok := d.table.Lookup(name); ok {
		d.run(cmd, args)
	} else {
		log.Printf("command %q: unknown", name)
		d.out.Write("unknown command", false)
		if hint := d.suggest(name); hint != "" {
			d.out.Write(fmt.Sprintf("did you mean '%s'?", hint), false)
		}
	}

	d.out.Write("", false)
}

func (d *Dispatcher) run(cmd Command, args []string) {
	if cmd.Disabled != nil {
		if disabled, reason := cmd.Disabled(d.session); disabled {
			log.Printf("command %s: refused in %s mode", cmd.Name, d.session.ModeName())
			d.out.Write(reason, true)
			return
		}
	}
	log.Printf("command %s argc=%d", cmd.Name, len(args))
	if cmd.Run != nil {
		cmd.Run(d, args)
	}
}

func (d *Dispatcher) suggest(name string) string {
	best, bestDist := "", suggestDistance+1
	for _, candidate := range d.table.Names() {
		if dist := levenshtein.ComputeDistance(name, candidate); dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}
