package format

import (
	"fmt"
	"strings"

	"jimmyclipboard/internal/ansi"
	"jimmyclipboard/internal/route"
	"jimmyclipboard/internal/session"
	"jimmyclipboard/internal/theme"
)

const welcome = "Welcome to JimmyClipboard\n\nPress space to copy the next jump, q to quit."

// separator is drawn after every waypoint block in the route list
var separator = strings.Repeat("─", 24)

// Formatter renders route data as ANSI-coloured text. The TUI translates the
// escapes into tview markup; the summary command prints them as is.
type Formatter struct {
	text   theme.TextColors
	tints  theme.CategoryTints
	escape func(string) string
}

// New creates a formatter for the given theme
func New(t theme.Theme) *Formatter {
	return &Formatter{
		text:   t.TextColors(),
		tints:  t.CategoryTints(),
		escape: func(s string) string { return s },
	}
}

// Default creates a formatter for the current theme
func Default() *Formatter {
	return New(theme.Current())
}

// WithEscape returns a copy of f that passes system and window names through
// escape before styling them. The TUI uses it to keep names out of the markup.
func (f *Formatter) WithEscape(escape func(string) string) *Formatter {
	c := *f
	c.escape = escape
	return &c
}

func (f *Formatter) name(s string) string {
	return f.value(f.escape(s))
}

func (f *Formatter) label(s string) string {
	return ansi.Fg(f.text.Label) + s
}

func (f *Formatter) value(s string) string {
	return ansi.Fg(f.text.Value) + s
}

func (f *Formatter) tint(c route.Category) string {
	switch c {
	case route.Refuel:
		return ansi.Bg(f.tints.Refuel)
	case route.Neutron:
		return ansi.Bg(f.tints.Neutron)
	}
	return ""
}

// Waypoint renders a two line block for w. Refuel and neutron stops get a
// background tint and a trailing category label.
func (f *Formatter) Waypoint(w route.Waypoint) string {
	cat := w.Category()

	var b strings.Builder
	b.WriteString(f.tint(cat))
	b.WriteString(f.name(w.SystemName))
	b.WriteString(f.label(": jump:"))
	b.WriteString(f.value(fmt.Sprintf("%.1f", w.Distance)))
	b.WriteString(f.label("ly\nremain:"))
	b.WriteString(f.value(fmt.Sprintf("%.1f", w.DistanceRemaining)))
	b.WriteString(f.label("ly tank:"))
	b.WriteString(f.value(fmt.Sprintf("%.1f", w.FuelUsed)))
	b.WriteString(f.label("T/"))
	b.WriteString(f.value(fmt.Sprintf("%.1f", w.FuelLeft)))
	b.WriteString(f.label("T"))
	if cat != route.Plain {
		b.WriteString(" ")
		b.WriteString(ansi.Fg(f.text.Highlight))
		b.WriteString(cat.String())
	}
	b.WriteString(ansi.Reset)
	return b.String()
}

// Summary renders the route summary panel
func (f *Formatter) Summary(s route.Summary) string {
	arrow := ansi.Fg(f.text.Arrow)

	lines := []string{
		f.label("Route Summary:"),
		"  " + f.label("Trip: ") + f.name(s.From) + " " +
			arrow + "=" + ansi.Fg(f.text.Distance) + fmt.Sprintf("%.3fkly", s.TripKly()) +
			arrow + "=> " + f.name(s.To),
		"  " + f.label("Total Jumps: ") + f.value(fmt.Sprint(s.Hops)),
		"  " + f.label("Neutron Stars: ") + f.value(fmt.Sprint(s.NeutronStars)),
		"  " + f.label("Fuel Stops: ") + f.value(fmt.Sprint(s.FuelStops)) + ansi.Reset,
	}
	return strings.Join(lines, "\n")
}

// Payload renders the progress panel after an advance
func (f *Formatter) Payload(p session.Payload) string {
	var b strings.Builder
	b.WriteString("Copied: '")
	b.WriteString(f.name(p.Copied))
	b.WriteString(ansi.Reset)
	b.WriteString("' to clipboard")
	if p.FocusTarget != "" {
		b.WriteString("\nSetting focus back to ")
		b.WriteString(f.escape(p.FocusTarget))
	}
	b.WriteString("\n\n")
	b.WriteString(f.label("Current System:\n"))
	b.WriteString(f.Waypoint(p.Current))
	b.WriteString("\n\n")
	b.WriteString(f.label("Next Jump:\n"))
	b.WriteString(f.Waypoint(p.Next))
	b.WriteString("\n\n")
	b.WriteString(f.label("Jump "))
	b.WriteString(f.value(fmt.Sprint(p.Step)))
	b.WriteString(f.label(" of "))
	b.WriteString(f.value(fmt.Sprint(p.Total)))
	b.WriteString(ansi.Reset)
	return b.String()
}

// List renders the remaining to-do rows of a session
func (f *Formatter) List(r route.Route, rows []session.Row) string {
	var b strings.Builder
	for _, row := range rows {
		if row.Delimiter {
			b.WriteString(f.label(separator))
			b.WriteString(ansi.Reset)
			b.WriteString("\n")
			continue
		}
		b.WriteString(f.Waypoint(r[row.Index]))
		b.WriteString("\n")
	}
	return b.String()
}

// Welcome is shown in the progress panel before the first advance
func (f *Formatter) Welcome() string {
	return welcome
}
