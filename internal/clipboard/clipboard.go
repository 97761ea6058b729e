package clipboard

import (
	"github.com/atotto/clipboard"
)

// System writes to the operating system clipboard. On Linux it shells out to
// xclip, xsel or wl-copy, whichever is installed.
type System struct{}

// New returns the system clipboard driver
func New() *System {
	return &System{}
}

// WriteText replaces the clipboard contents with text
func (s *System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend was found
func Available() bool {
	return !clipboard.Unsupported
}
