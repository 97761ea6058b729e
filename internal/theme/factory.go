package theme

import "github.com/rivo/tview"

// NewPanelView creates a bordered, titled text panel using the current theme
func NewPanelView(title string) *tview.TextView {
	colors := Current().PanelColors()

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetTextAlign(tview.AlignLeft)
	view.SetBackgroundColor(colors.Background)
	view.SetTextColor(colors.Foreground)
	view.SetBorder(true).
		SetBorderColor(colors.Border).
		SetTitleColor(colors.Title).
		SetTitle(title).
		SetTitleAlign(tview.AlignLeft)
	return view
}

// NewFlex creates a flex container using the current theme background
func NewFlex(direction int) *tview.Flex {
	flex := tview.NewFlex().SetDirection(direction)
	flex.SetBackgroundColor(Current().PanelColors().Background)
	return flex
}
