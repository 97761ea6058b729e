package ansi

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Reset clears every attribute
const Reset = "\x1b[0m"

// Fg returns a true-colour foreground escape for c, or "" for the default colour
func Fg(c tcell.Color) string {
	return trueColor(38, c)
}

// Bg returns a true-colour background escape for c, or "" for the default colour
func Bg(c tcell.Color) string {
	return trueColor(48, c)
}

func trueColor(target int, c tcell.Color) string {
	if c == tcell.ColorDefault {
		return ""
	}
	r, g, b := c.RGB()
	if r < 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", target, r, g, b)
}
