package ansi

import (
	"io"
	"strings"
)

const (
	stateText = iota
	stateEsc
	stateCSI
)

// Stripper removes CSI escape sequences from text that may arrive in pieces.
// A sequence split across two calls is held back until it completes.
type Stripper struct {
	state int
}

// Strip returns chunk with every escape sequence removed
func (s *Stripper) Strip(chunk string) string {
	var out strings.Builder
	for _, ch := range chunk {
		switch s.state {
		case stateText:
			if ch == '\x1b' {
				s.state = stateEsc
				continue
			}
			out.WriteRune(ch)
		case stateEsc:
			if ch == '[' {
				s.state = stateCSI
				continue
			}
			// lone ESC, keep what follows
			s.state = stateText
			out.WriteRune(ch)
		case stateCSI:
			if ch >= 0x40 && ch <= 0x7e {
				s.state = stateText
			}
		}
	}
	return out.String()
}

// StripString removes escape sequences from a complete string
func StripString(text string) string {
	var s Stripper
	return s.Strip(text)
}

// Writer strips escape sequences from everything written through it
type Writer struct {
	w io.Writer
	s Stripper
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if _, err := io.WriteString(w.w, w.s.Strip(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
