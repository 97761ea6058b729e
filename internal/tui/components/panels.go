package components

import (
	"github.com/rivo/tview"

	"jimmyclipboard/internal/theme"
)

// summaryHeight is five lines of summary plus the border
const summaryHeight = 7

// PanelComponent manages the right hand column: the static route summary on
// top and the clipboard/progress panel below it
type PanelComponent struct {
	summaryView  *tview.TextView
	progressView *tview.TextView
	wrapper      *tview.Flex
}

// NewPanelComponent creates the panels. Text is ANSI-coloured and translated
// to tview markup on the way in.
func NewPanelComponent(summary, welcome string) *PanelComponent {
	summaryView := theme.NewPanelView(" Summary ")
	summaryView.SetText(tview.TranslateANSI(summary))

	progressView := theme.NewPanelView(" Clipboard ")
	progressView.SetText(tview.TranslateANSI(welcome))

	wrapper := theme.NewFlex(tview.FlexRow).
		AddItem(summaryView, summaryHeight, 0, false).
		AddItem(progressView, 0, 1, false)

	return &PanelComponent{
		summaryView:  summaryView,
		progressView: progressView,
		wrapper:      wrapper,
	}
}

// GetWrapper returns the column container
func (pc *PanelComponent) GetWrapper() *tview.Flex {
	return pc.wrapper
}

// SetProgress replaces the progress panel contents
func (pc *PanelComponent) SetProgress(text string) {
	pc.progressView.SetText(tview.TranslateANSI(text))
	pc.progressView.ScrollToBeginning()
}

// ProgressText returns the progress panel contents without markup
func (pc *PanelComponent) ProgressText() string {
	return pc.progressView.GetText(true)
}

// SummaryText returns the summary panel contents without markup
func (pc *PanelComponent) SummaryText() string {
	return pc.summaryView.GetText(true)
}
