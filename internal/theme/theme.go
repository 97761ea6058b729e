package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// PanelColors defines the colour scheme for bordered panels
type PanelColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
}

// TextColors are the foreground colours used inside formatted route text
type TextColors struct {
	Label     tcell.Color // "jump:", "remain:", headings
	Value     tcell.Color // system names and numbers
	Highlight tcell.Color // category labels
	Arrow     tcell.Color // the "=" / "=>" of the trip line
	Distance  tcell.Color // trip distance in the summary
}

// CategoryTints are the background tints behind special waypoints.
// tcell.ColorDefault means no tint.
type CategoryTints struct {
	Refuel  tcell.Color
	Neutron tcell.Color
}

// Theme defines every colour the application draws with
type Theme interface {
	Name() string
	PanelColors() PanelColors
	TextColors() TextColors
	CategoryTints() CategoryTints
}

// ThemeManager manages theme selection
type ThemeManager struct {
	mu           sync.RWMutex
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a manager with the built-in themes registered and
// "elite" selected
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{themes: make(map[string]Theme)}
	tm.RegisterTheme(NewEliteTheme())
	tm.RegisterTheme(NewPlainTheme())
	_ = tm.SetTheme(DefaultName)
	return tm
}

// RegisterTheme adds or replaces a theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.themes[theme.Name()] = theme
}

// SetTheme selects a registered theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	theme, ok := tm.themes[name]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	tm.currentTheme = theme
	return nil
}

// Current returns the selected theme
func (tm *ThemeManager) Current() Theme {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.currentTheme
}

// Available returns the registered theme names, sorted
func (tm *ThemeManager) Available() []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultThemeManager = NewThemeManager()

// GetThemeManager returns the global theme manager
func GetThemeManager() *ThemeManager {
	return defaultThemeManager
}

// Current returns the current theme from the global manager
func Current() Theme {
	return defaultThemeManager.Current()
}

// Use selects a theme on the global manager
func Use(name string) error {
	return defaultThemeManager.SetTheme(name)
}
