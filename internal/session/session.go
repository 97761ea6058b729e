package session

import (
	"fmt"
	"runtime/debug"

	"jimmyclipboard/internal/log"
	"jimmyclipboard/internal/route"
)

// Clipboard receives the name of the next system
type Clipboard interface {
	WriteText(text string) error
}

// Focuser hands input focus back to the game window
type Focuser interface {
	Focus() error
	Target() string
}

// Row is one line of the to-do list shown to the pilot. Waypoint rows carry
// their index into the route; every waypoint row is followed by a delimiter.
type Row struct {
	Index     int
	Delimiter bool
}

// Payload is what the progress panel shows after an advance
type Payload struct {
	Copied      string         // system name written to the clipboard
	FocusTarget string         // window focus was handed to, "" when focus stealing is off
	Current     route.Waypoint // system being departed
	Next        route.Waypoint // system being jumped to
	Step        int            // 1-based jump number
	Total       int            // jumps in the route
}

// Session steps a pilot through a route. It owns the cursor and the visual
// rows; the route itself is shared and never modified.
//
// Session is not safe for concurrent use. The UI calls Advance from its event
// loop only.
type Session struct {
	route     route.Route
	clipboard Clipboard
	focus     Focuser
	rows      []Row
	cursor    int
	finished  bool
}

// New starts a session at the first waypoint. A nil focuser disables focus
// stealing. r must be non-empty.
func New(r route.Route, clipboard Clipboard, focus Focuser) *Session {
	rows := make([]Row, 0, 2*len(r))
	for i := range r {
		rows = append(rows, Row{Index: i}, Row{Delimiter: true})
	}

	return &Session{
		route:     r,
		clipboard: clipboard,
		focus:     focus,
		rows:      rows,
		finished:  len(r) == 0,
	}
}

// Advance moves the pilot to the next waypoint. It returns false once the
// route is exhausted, in which case nothing is copied and the UI should quit.
func (s *Session) Advance() (Payload, bool) {
	if s.finished {
		return Payload{}, false
	}

	prev := s.head()
	s.rows = s.rows[2:]

	if len(s.rows) == 0 {
		s.finished = true
		log.Info("Route complete", "destination", s.route[prev].SystemName)
		return Payload{}, false
	}

	next := s.head()
	s.cursor = next

	// The transition above is committed; nothing below may undo it.
	name := s.route[next].SystemName
	s.copy(name)

	var target string
	if s.focus != nil {
		target = s.focus.Target()
		s.requestFocus()
	}

	p := Payload{
		Copied:      name,
		FocusTarget: target,
		Current:     s.route[prev],
		Next:        s.route[next],
		Step:        next,
		Total:       len(s.route) - 1,
	}

	log.Debug("Advanced", "from", s.route[prev].SystemName, "to", name, "step", p.Step, "of", p.Total)
	return p, true
}

// head returns the route index of the first visual row
func (s *Session) head() int {
	r := s.rows[0]
	if r.Delimiter {
		panic(fmt.Sprintf("session: delimiter at head of list (%d rows left)", len(s.rows)))
	}
	return r.Index
}

func (s *Session) copy(name string) {
	defer recoverDriver("clipboard")
	if s.clipboard == nil {
		return
	}
	if err := s.clipboard.WriteText(name); err != nil {
		log.Warn("Clipboard write failed", "system", name, "error", err)
	}
}

func (s *Session) requestFocus() {
	defer recoverDriver("focus")
	if err := s.focus.Focus(); err != nil {
		log.Warn("Focus request failed", "target", s.focus.Target(), "error", err)
	}
}

func recoverDriver(name string) {
	if r := recover(); r != nil {
		log.Error("Driver panic recovered", "driver", name, "error", r, "stack", string(debug.Stack()))
	}
}

// Cursor returns the route index of the system the pilot is in
func (s *Session) Cursor() int {
	return s.cursor
}

// Finished reports whether the route has been exhausted
func (s *Session) Finished() bool {
	return s.finished
}

// Rows returns a copy of the remaining visual rows
func (s *Session) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// Remaining returns the number of jumps left
func (s *Session) Remaining() int {
	if s.finished {
		return 0
	}
	return len(s.route) - 1 - s.cursor
}

// Route returns the route being flown
func (s *Session) Route() route.Route {
	return s.route
}

// FocusSteal reports whether focus is handed back after each copy
func (s *Session) FocusSteal() bool {
	return s.focus != nil
}
