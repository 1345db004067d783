// Package core contains the console's run loop and its key routing.
//
// Allowed here:
// - the frame loop (input polling, tick, render, mode transitions)
// - key registries and default bindings per mode
// - the contract the script engine implements
//
// Not allowed here:
// - command handlers (core/commands)
// - line editing, history or scrollback state (core/lineedit, core/history, core/terminal)
// - the script runtime itself (internal/engine)
package core
