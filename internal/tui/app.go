package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"jimmyclipboard/internal/format"
	"jimmyclipboard/internal/log"
	"jimmyclipboard/internal/route"
	"jimmyclipboard/internal/session"
	"jimmyclipboard/internal/theme"
	"jimmyclipboard/internal/tui/components"
	"jimmyclipboard/internal/tui/handlers"
)

// App is the split-pane route UI. The session is driven only from the tview
// event loop, through the input handler.
type App struct {
	app       *tview.Application
	session   *session.Session
	formatter *format.Formatter

	// UI components
	routeList *components.RouteListComponent
	panels    *components.PanelComponent
	mainFlex  *tview.Flex

	inputHandler *handlers.InputHandler

	stopped bool
}

// NewApplication builds the UI for a session. Names rendered by f are escaped
// so brackets in them show up as typed.
func NewApplication(s *session.Session, summary route.Summary, f *format.Formatter) *App {
	f = f.WithEscape(tview.Escape)
	ta := &App{
		app:          tview.NewApplication(),
		session:      s,
		formatter:    f,
		routeList:    components.NewRouteListComponent(),
		panels:       components.NewPanelComponent(f.Summary(summary), f.Welcome()),
		inputHandler: handlers.NewInputHandler(),
	}

	ta.setupUI()
	ta.setupInputHandling()
	ta.refreshList()
	return ta
}

// setupUI lays out the list on the left and the panels on the right
func (ta *App) setupUI() {
	ta.mainFlex = theme.NewFlex(tview.FlexColumn).
		AddItem(ta.routeList.GetView(), 0, 1, true).
		AddItem(ta.panels.GetWrapper(), 0, 1, false)

	ta.app.SetRoot(ta.mainFlex, true).SetFocus(ta.routeList.GetView())
}

func (ta *App) setupInputHandling() {
	ta.inputHandler.SetCallbacks(ta.advance, ta.quit)
	ta.app.SetInputCapture(ta.inputHandler.HandleKeyEvent)
}

// SetScreen replaces the terminal screen, used with tcell simulation screens
func (ta *App) SetScreen(screen tcell.Screen) {
	ta.app.SetScreen(screen)
}

// Run blocks until the pilot quits or the route is done
func (ta *App) Run() error {
	log.Info("UI started", "waypoints", len(ta.session.Route()), "focus_steal", ta.session.FocusSteal())
	return ta.app.Run()
}

// advance moves the session on and redraws; the last advance quits
func (ta *App) advance() {
	p, ok := ta.session.Advance()
	if !ok {
		ta.quit()
		return
	}

	ta.panels.SetProgress(ta.formatter.Payload(p))
	ta.refreshList()
}

func (ta *App) refreshList() {
	ta.routeList.Update(ta.formatter.List(ta.session.Route(), ta.session.Rows()), ta.session.Remaining())
}

// quit stops the event loop. Safe before Run and when already stopped.
func (ta *App) quit() {
	if ta.stopped {
		return
	}
	ta.stopped = true
	log.Info("UI stopping", "cursor", ta.session.Cursor(), "finished", ta.session.Finished())
	ta.app.Stop()
}

// Stopped reports whether quit has been requested
func (ta *App) Stopped() bool {
	return ta.stopped
}
