package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"jimmyclipboard/internal/focus"
	"jimmyclipboard/internal/theme"
)

// Environment variable names
const (
	EnvLogFile      = "JIMMY_LOG_FILE"
	EnvFocusWindow  = "JIMMY_FOCUS_WINDOW"
	EnvFocusCommand = "JIMMY_FOCUS_COMMAND"
	EnvFocusSteal   = "JIMMY_FOCUS_STEAL"
	EnvTheme        = "JIMMY_THEME"
)

const DefaultLogFile = "jimmyclipboard.log"

type Config struct {
	LogFile      string
	FocusWindow  string
	FocusCommand string
	FocusSteal   bool
	Theme        string
}

// Load reads the given .env files (default ".env"; missing files are
// skipped) into the environment and builds the configuration from it.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{
		LogFile:      getenvDefault(EnvLogFile, DefaultLogFile),
		FocusWindow:  getenvDefault(EnvFocusWindow, focus.DefaultWindow),
		FocusCommand: getenvDefault(EnvFocusCommand, focus.DefaultCommand),
		Theme:        getenvDefault(EnvTheme, theme.DefaultName),
	}

	if v := os.Getenv(EnvFocusSteal); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", EnvFocusSteal, v)
		}
		cfg.FocusSteal = b
	}

	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, errors.New("not a boolean")
}
