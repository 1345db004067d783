package commands

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// CartridgeExt is appended to the name given to run.
const CartridgeExt = ".luag"

const (
	editorFolderName = "editor"
	templateBundle   = "template" + CartridgeExt
)

// Builtins returns the console's command table, in help order.
func Builtins() []Command {
	return []Command{
		{Name: "run", Description: "runs game", Run: runGame},
		{Name: "edit", Aliases: []string{"editor"}, Description: "opens editor", Disabled: developerOnly, Run: openEditor},
		{Name: "pack", Description: "creates cartridge", Run: noop},
		{Name: "setup", Description: "creates game files", Disabled: developerOnly, Run: setupUserData},
		{Name: "cls", Aliases: []string{"clear"}, Description: "clears shell", Run: clearShell},
		{Name: "ver", Aliases: []string{"version"}, Description: "prints version", Run: printVersion},
		{Name: "help", Description: "prints this list", Run: printHelp},
		{Name: "mode", Description: "changes console mode", Run: changeMode},
		{Name: "files", Description: "opens game folder", Disabled: developerOnly, Run: openFiles},
		{Name: "log", Description: "opens log file", Run: noop},
		{Name: "exit", Description: "closes the console", Run: exitConsole},
	}
}

func noop(*Dispatcher, []string) {}

func runGame(d *Dispatcher, args []string) {
	if len(args) == 0 {
		if !d.session.DeveloperMode {
			d.out.Write("Error:\ninsert cartridge name", true)
			return
		}
		d.session.RequestLoad(d.paths.UserData, false)
		return
	}

	filename := args[0] + CartridgeExt
	var (
		folder string
		err    error
	)
	if d.archive == nil {
		err = fmt.Errorf("no cartridge store")
	} else {
		folder, err = d.archive.Extract(filepath.Join(d.paths.Cartridges, filename), "")
	}
	if err != nil {
		log.Printf("run %s: %v", filename, err)
		d.out.Write(fmt.Sprintf("Error:\n'%s'\ncartridge not found", filename), true)
		return
	}
	d.session.RequestLoad(folder, false)
}

func openEditor(d *Dispatcher, _ []string) {
	if d.editorFolder == "" {
		d.editorFolder = filepath.Join(d.paths.Resource, editorFolderName)
	}
	d.session.RequestLoad(d.editorFolder, true)
}

func setupUserData(d *Dispatcher, _ []string) {
	dest := d.paths.UserData
	if _, err := os.Stat(dest); err == nil {
		d.out.Write(fmt.Sprintf("Error:\n'%s'\nalready exists", dest), true)
		return
	}

	template := filepath.Join(d.paths.Resource, templateBundle)
	var err error
	if d.archive == nil {
		err = fmt.Errorf("no cartridge store")
	} else {
		_, err = d.archive.Extract(template, dest)
	}
	if err != nil {
		log.Printf("setup: extract %s into %s: %v", template, dest, err)
		d.out.Write("Error:\ncould not extract\ncartridge template", true)
	}
}

func clearShell(d *Dispatcher, _ []string) {
	d.out.Clear()
}

func printVersion(d *Dispatcher, _ []string) {
	d.out.Write(d.version, false)
	d.out.Write(d.copyright, false)
	d.out.Write("This is Free software", false)
}

func printHelp(d *Dispatcher, args []string) {
	if len(args) == 0 {
		for _, c := range d.table.Commands() {
			d.out.Write(c.Name+": "+c.Description, false)
		}
		return
	}
	c, ok := d.table.Lookup(d.fold.String(args[0]))
	if !ok {
		d.out.Write("unknown command", false)
		return
	}
	d.out.Write(c.Name+": "+c.Description, false)
	if len(c.Aliases) > 0 {
		d.out.Write("also: "+strings.Join(c.Aliases, ", "), false)
	}
}

func changeMode(d *Dispatcher, args []string) {
	if len(args) == 0 {
		d.out.Write("current mode:", false)
		d.out.Write(d.session.ModeName(), false)
		return
	}
	switch args[0] {
	case "d", "developer":
		d.session.DeveloperMode = true
		d.out.Write("switching to\ndeveloper mode", false)
	case "u", "user":
		d.session.DeveloperMode = false
		d.out.Write("switching to\nuser mode", false)
	default:
		d.out.Write("Error\nunrecognized mode\ntry 'd' or 'u'", true)
	}
}

func openFiles(d *Dispatcher, _ []string) {
	if d.opener == nil {
		return
	}
	if err := d.opener.Open(d.paths.UserData); err != nil {
		log.Printf("files: %v", err)
		d.out.Write(fmt.Sprintf("Error:\ncould not open\n'%s'", d.paths.UserData), true)
	}
}

func exitConsole(d *Dispatcher, _ []string) {
	d.session.ShouldQuit = true
}
