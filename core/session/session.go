// Package session holds the process-wide state shared by the command
// handlers and the run loop.
package session

import "github.com/google/uuid"

// LoadRequest asks the run loop to start the engine on Folder.
type LoadRequest struct {
	Folder string
	Editor bool
}

// State is created once per process and passed by pointer. Only the frame
// loop goroutine touches it.
type State struct {
	ID               uuid.UUID
	DeveloperMode    bool
	ActiveGameFolder string
	ShouldQuit       bool
	EngineRunning    bool

	pending *LoadRequest
}

func New() *State {
	return &State{ID: uuid.New()}
}

// RequestLoad records folder as the active game folder and queues a
// switch to engine mode for the run loop to perform.
func (s *State) RequestLoad(folder string, editor bool) {
	s.ActiveGameFolder = folder
	s.pending = &LoadRequest{Folder: folder, Editor: editor}
}

func (s *State) LoadPending() bool { return s.pending != nil }

// TakeLoadRequest returns and clears the queued load, if any.
func (s *State) TakeLoadRequest() (LoadRequest, bool) {
	if s.pending == nil {
		return LoadRequest{}, false
	}
	req := *s.pending
	s.pending = nil
	return req, true
}

func (s *State) ModeName() string {
	if s.DeveloperMode {
		return "developer"
	}
	return "user"
}
