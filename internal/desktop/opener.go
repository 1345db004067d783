// Package desktop hands folders to the platform file browser.
package desktop

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

type Opener struct {
	// open launches the file browser on path.
	open func(path string) error
}

// NewOpener opens folders with pkg/browser. The launched process shares
// the terminal with the console, so its output is discarded.
func NewOpener() *Opener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Opener{open: browser.OpenFile}
}

func (o *Opener) Open(path string) error {
	if err := o.open(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
