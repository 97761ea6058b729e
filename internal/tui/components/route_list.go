package components

import (
	"fmt"

	"github.com/rivo/tview"

	"jimmyclipboard/internal/theme"
)

// RouteListComponent is the left pane: the waypoints still to be flown, the
// current system at the top
type RouteListComponent struct {
	view *tview.TextView
}

// NewRouteListComponent creates the list pane
func NewRouteListComponent() *RouteListComponent {
	view := theme.NewPanelView(" Route ")
	view.SetScrollable(true).SetWrap(false)
	return &RouteListComponent{view: view}
}

// GetView returns the list view; it takes focus so the arrow keys scroll it
func (rl *RouteListComponent) GetView() *tview.TextView {
	return rl.view
}

// Update redraws the list from ANSI text and scrolls back to the top
func (rl *RouteListComponent) Update(text string, remaining int) {
	rl.view.SetText(tview.TranslateANSI(text))
	rl.view.SetTitle(fmt.Sprintf(" Route (%d jumps left) ", remaining))
	rl.view.ScrollToBeginning()
}

// Text returns the list contents without markup
func (rl *RouteListComponent) Text() string {
	return rl.view.GetText(true)
}
