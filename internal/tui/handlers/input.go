package handlers

import (
	"github.com/gdamore/tcell/v2"

	"jimmyclipboard/internal/log"
)

// Key bindings
const (
	KeyAdvance = ' '
	KeyQuit    = 'q'
)

// InputHandler routes global key presses to the application callbacks.
// Everything it does not handle falls through to the focused widget, so the
// arrow and page keys keep scrolling the route list.
type InputHandler struct {
	onAdvance func()
	onQuit    func()
}

// NewInputHandler creates a handler with no callbacks set
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// SetCallbacks sets the callback functions
func (ih *InputHandler) SetCallbacks(onAdvance, onQuit func()) {
	ih.onAdvance = onAdvance
	ih.onQuit = onQuit
}

// HandleKeyEvent is installed as the application input capture
func (ih *InputHandler) HandleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune || event.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return event
	}

	switch event.Rune() {
	case KeyAdvance:
		log.Debug("Key: advance")
		if ih.onAdvance != nil {
			ih.onAdvance()
		}
		return nil
	case KeyQuit, 'Q':
		log.Debug("Key: quit")
		if ih.onQuit != nil {
			ih.onQuit()
		}
		return nil
	}

	return event
}
