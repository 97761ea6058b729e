package theme

import "github.com/gdamore/tcell/v2"

// DefaultName is the theme selected at startup
const DefaultName = "elite"

// Standard 16-colour palette entries used by the themes
var (
	Black       = tcell.NewHexColor(0x000000)
	LightGray   = tcell.NewHexColor(0xC0C0C0)
	DarkGray    = tcell.NewHexColor(0x808080)
	LightRed    = tcell.NewHexColor(0xFF0000)
	LightBlue   = tcell.NewHexColor(0x0000FF)
	LightCyan   = tcell.NewHexColor(0x00FFFF)
	White       = tcell.NewHexColor(0xFFFFFF)
	Orange      = tcell.NewHexColor(0xFF8000)
	RefuelTint  = tcell.NewHexColor(0x201000)
	NeutronTint = tcell.NewHexColor(0x000040)
)

// EliteTheme is the default look: cyan values on the terminal background,
// with brown and navy tints behind refuel and neutron stops
type EliteTheme struct{}

func NewEliteTheme() *EliteTheme {
	return &EliteTheme{}
}

func (t *EliteTheme) Name() string {
	return DefaultName
}

func (t *EliteTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: tcell.ColorDefault,
		Foreground: LightGray,
		Border:     Orange,
		Title:      Orange,
	}
}

func (t *EliteTheme) TextColors() TextColors {
	return TextColors{
		Label:     LightGray,
		Value:     LightCyan,
		Highlight: White,
		Arrow:     LightBlue,
		Distance:  LightRed,
	}
}

func (t *EliteTheme) CategoryTints() CategoryTints {
	return CategoryTints{
		Refuel:  RefuelTint,
		Neutron: NeutronTint,
	}
}

// PlainTheme keeps the text colours but drops the background tints, for
// terminals without true-colour support
type PlainTheme struct {
	EliteTheme
}

func NewPlainTheme() *PlainTheme {
	return &PlainTheme{}
}

func (t *PlainTheme) Name() string {
	return "plain"
}

func (t *PlainTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		Border:     DarkGray,
		Title:      White,
	}
}

func (t *PlainTheme) CategoryTints() CategoryTints {
	return CategoryTints{
		Refuel:  tcell.ColorDefault,
		Neutron: tcell.ColorDefault,
	}
}
