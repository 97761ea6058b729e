package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jimmyclipboard/internal/ansi"
	"jimmyclipboard/internal/route"
	"jimmyclipboard/internal/session"
	"jimmyclipboard/internal/theme"
)

const (
	refuelBg  = "\x1b[48;2;32;16;0m"
	neutronBg = "\x1b[48;2;0;0;64m"
)

func TestWaypoint_Plain(t *testing.T) {
	f := New(theme.NewEliteTheme())
	out := f.Waypoint(route.Waypoint{
		SystemName:        "Sol",
		Distance:          4.38,
		DistanceRemaining: 1234.56,
		FuelLeft:          30.04,
		FuelUsed:          1.96,
	})

	assert.Equal(t, "Sol: jump:4.4ly\nremain:1234.6ly tank:2.0T/30.0T", ansi.StripString(out))
	assert.NotContains(t, out, "\x1b[48;")
}

func TestWaypoint_CategoryTints(t *testing.T) {
	f := New(theme.NewEliteTheme())

	refuel := f.Waypoint(route.Waypoint{SystemName: "B", Refuel: true, NeutronStar: true})
	assert.True(t, strings.HasPrefix(refuel, refuelBg))
	assert.True(t, strings.HasSuffix(ansi.StripString(refuel), " Refuel"))

	neutron := f.Waypoint(route.Waypoint{SystemName: "C", NeutronStar: true})
	assert.True(t, strings.HasPrefix(neutron, neutronBg))
	assert.True(t, strings.HasSuffix(ansi.StripString(neutron), " Neutron"))
}

func TestWaypoint_PlainThemeDropsTints(t *testing.T) {
	f := New(theme.NewPlainTheme())
	out := f.Waypoint(route.Waypoint{SystemName: "B", Refuel: true})

	assert.NotContains(t, out, "\x1b[48;")
	assert.Contains(t, ansi.StripString(out), "Refuel")
}

func TestSummary(t *testing.T) {
	f := New(theme.NewEliteTheme())
	out := f.Summary(route.Summary{
		From:         "A",
		To:           "C",
		TripDistance: 1000,
		Hops:         2,
		NeutronStars: 1,
		FuelStops:    1,
	})

	expected := "Route Summary:\n" +
		"  Trip: A =1.000kly=> C\n" +
		"  Total Jumps: 2\n" +
		"  Neutron Stars: 1\n" +
		"  Fuel Stops: 1"
	assert.Equal(t, expected, ansi.StripString(out))
}

func TestSummary_ThreeDecimals(t *testing.T) {
	f := New(theme.NewEliteTheme())
	out := ansi.StripString(f.Summary(route.Summary{From: "Sol", To: "Sag A*", TripDistance: 25899.6789}))

	assert.Contains(t, out, "=25.900kly=>")
}

func TestPayload(t *testing.T) {
	f := New(theme.NewEliteTheme())
	p := session.Payload{
		Copied:  "B",
		Current: route.Waypoint{SystemName: "A", DistanceRemaining: 1000},
		Next:    route.Waypoint{SystemName: "B", Distance: 600, DistanceRemaining: 400, Refuel: true},
		Step:    1,
		Total:   2,
	}

	out := ansi.StripString(f.Payload(p))
	expected := "Copied: 'B' to clipboard\n\n" +
		"Current System:\n" +
		"A: jump:0.0ly\nremain:1000.0ly tank:0.0T/0.0T\n\n" +
		"Next Jump:\n" +
		"B: jump:600.0ly\nremain:400.0ly tank:0.0T/0.0T Refuel\n\n" +
		"Jump 1 of 2"
	assert.Equal(t, expected, out)
}

func TestPayload_FocusNote(t *testing.T) {
	f := New(theme.NewEliteTheme())
	p := session.Payload{
		Copied:      "C",
		FocusTarget: "Elite - Dangerous (CLIENT)",
		Current:     route.Waypoint{SystemName: "B"},
		Next:        route.Waypoint{SystemName: "C"},
	}

	out := ansi.StripString(f.Payload(p))
	assert.True(t, strings.HasPrefix(out, "Copied: 'C' to clipboard\nSetting focus back to Elite - Dangerous (CLIENT)\n\n"))
}

func TestList(t *testing.T) {
	f := New(theme.NewEliteTheme())
	r := route.Route{
		{SystemName: "A"},
		{SystemName: "B"},
		{SystemName: "C"},
	}
	rows := []session.Row{{Index: 1}, {Delimiter: true}, {Index: 2}, {Delimiter: true}}

	lines := strings.Split(strings.TrimSuffix(ansi.StripString(f.List(r, rows)), "\n"), "\n")

	assert.Len(t, lines, 6)
	assert.Equal(t, "B: jump:0.0ly", lines[0])
	assert.Equal(t, separator, lines[2])
	assert.Equal(t, "C: jump:0.0ly", lines[3])
	assert.Equal(t, separator, lines[5])
}

func TestList_Empty(t *testing.T) {
	assert.Empty(t, New(theme.NewEliteTheme()).List(nil, nil))
}

func TestWelcome(t *testing.T) {
	assert.Contains(t, Default().Welcome(), "Welcome to JimmyClipboard")
}

func TestWithEscape_AppliesToNamesOnly(t *testing.T) {
	base := New(theme.NewEliteTheme())
	f := base.WithEscape(func(s string) string { return "<" + s + ">" })

	out := ansi.StripString(f.Waypoint(route.Waypoint{SystemName: "Sol"}))
	assert.True(t, strings.HasPrefix(out, "<Sol>: jump:"))

	summary := ansi.StripString(f.Summary(route.Summary{From: "A", To: "C", TripDistance: 1000}))
	assert.Contains(t, summary, "Trip: <A> =1.000kly=> <C>")
	assert.Contains(t, summary, "Route Summary:")

	payload := ansi.StripString(f.Payload(session.Payload{
		Copied:      "B",
		FocusTarget: "Elite",
		Current:     route.Waypoint{SystemName: "A"},
		Next:        route.Waypoint{SystemName: "B"},
	}))
	assert.Contains(t, payload, "Copied: '<B>' to clipboard")
	assert.Contains(t, payload, "Setting focus back to <Elite>")

	assert.True(t, strings.HasPrefix(ansi.StripString(base.Waypoint(route.Waypoint{SystemName: "Sol"})), "Sol: "),
		"the original formatter is left unchanged")
}
