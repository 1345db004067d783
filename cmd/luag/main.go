package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/luagconsole/luag/core"
	"github.com/luagconsole/luag/core/commands"
	"github.com/luagconsole/luag/core/session"
	"github.com/luagconsole/luag/core/shell"
	"github.com/luagconsole/luag/core/terminal"
	"github.com/luagconsole/luag/internal/cartridge"
	"github.com/luagconsole/luag/internal/config"
	"github.com/luagconsole/luag/internal/desktop"
	"github.com/luagconsole/luag/internal/engine"
	"github.com/luagconsole/luag/internal/locator"
)

var (
	version   = "0.1.0"
	copyright = "Copyright (C) LuaG Console authors"
)

// Startup exit codes, one per subsystem.
const (
	exitResource = 1 + iota
	exitConfigFolder
	exitConfig
	exitDisplay
	exitLog
	exitCommands
	exitCartridges
	exitEngine

	// not startup subsystems
	exitUsage
	exitConsole
)

type options struct {
	resDir    string
	configDir string
	fps       int
	version   bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("luag", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.resDir, "res-dir", "", "resource folder (probed first)")
	fs.StringVar(&o.configDir, "config-dir", "", "config folder (probed first)")
	fs.IntVar(&o.fps, "fps", 0, "frames per second, overrides loop.fps")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: luag [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if o.fps < 0 {
		return options{}, fmt.Errorf("--fps must not be negative, got %d", o.fps)
	}
	return o, nil
}

// startupError carries the exit code of the subsystem that failed.
type startupError struct {
	code int
	err  error
}

func (e *startupError) Error() string { return e.err.Error() }
func (e *startupError) Unwrap() error { return e.err }

func fail(code int, format string, args ...any) error {
	return &startupError{code: code, err: fmt.Errorf(format, args...)}
}

// exitCode maps a run error to the process status. Errors without a
// subsystem come from the running console.
func exitCode(err error) int {
	var se *startupError
	if errors.As(err, &se) {
		return se.code
	}
	return exitConsole
}

// folders locates the resource and config folders.
func folders(o options, goos string, getenv func(string) string) (res, cfg string, err error) {
	res, err = locator.Find(locator.Resource, locator.Candidates(locator.Resource, goos, getenv, o.resDir))
	if err != nil {
		return "", "", fail(exitResource, "%w", err)
	}
	cfg, err = locator.Find(locator.Config, locator.Candidates(locator.Config, goos, getenv, o.configDir))
	if err != nil {
		return "", "", fail(exitConfigFolder, "%w", err)
	}
	return res, cfg, nil
}

// resolve makes a relative configured path relative to base.
func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	if o.version {
		fmt.Printf("LuaG Console %s\n%s\n", version, copyright)
		return
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(o options) error {
	resDir, cfgDir, err := folders(o, runtime.GOOS, os.Getenv)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgDir)
	if err != nil {
		return fail(exitConfig, "%w", err)
	}
	if o.fps > 0 {
		cfg.Loop.FPS = o.fps
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fail(exitDisplay, "display: stdout is not a terminal")
	}

	logFile, err := tea.LogToFile(cfg.Log.File, "luag ")
	if err != nil {
		return fail(exitLog, "log file %s: %w", cfg.Log.File, err)
	}
	defer logFile.Close()

	s := session.New()
	log.Printf("session %s starting", s.ID)
	log.Printf("resource folder: %s", resDir)
	log.Printf("config folder: %s", cfgDir)

	store, err := cartridge.NewStore(resolve(cfgDir, cfg.Paths.Temp))
	if err != nil {
		return fail(exitCartridges, "%w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("cartridge store close: %v", err)
		}
	}()

	if !filepath.IsLocal(cfg.Engine.Entry) {
		return fail(exitEngine, "engine: entry %q must be a path inside the game folder", cfg.Engine.Entry)
	}
	eng := engine.New(cfg.Engine.Entry)

	out := terminal.NewBuffer(cfg.Shell.Scrollback)
	dispatcher, err := commands.New(commands.Deps{
		Session: s,
		Out:     out,
		Archive: store,
		Opener:  desktop.NewOpener(),
		Paths: commands.Paths{
			Resource:   resDir,
			UserData:   resolve(cfgDir, cfg.Paths.UserData),
			Cartridges: resolve(cfgDir, cfg.Paths.Cartridges),
		},
		Version:   version,
		Copyright: copyright,
	})
	if err != nil {
		return fail(exitCommands, "commands: %w", err)
	}

	sh := shell.New(shell.Options{MaxLineLen: cfg.Shell.MaxLineLen, HistorySize: cfg.Shell.HistorySize}, out, dispatcher)
	sh.Write(fmt.Sprintf("LuaG Console %s", version), false)
	sh.Write("type 'help' for commands", false)
	sh.Write("", false)

	model := core.NewModel(s, sh, eng, nil, cfg.Loop.FPS)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(core.Model); ok {
		model = m
	}
	model.Close()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	log.Printf("session %s finished", s.ID)
	return nil
}
