package focus

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const (
	// DefaultCommand activates windows through the EWMH window manager hints
	DefaultCommand = "wmctrl"

	// DefaultWindow is matched as a title substring
	DefaultWindow = "Elite - Dangerous (CLIENT)"

	defaultTimeout = 2 * time.Second
)

// WindowFocuser raises a window by title by running `<Command> -a <Window>`
type WindowFocuser struct {
	Command string
	Window  string
	Timeout time.Duration

	run func(ctx context.Context, name string, args ...string) error
}

// New creates a focuser, falling back to the defaults for empty arguments
func New(command, window string) *WindowFocuser {
	if command == "" {
		command = DefaultCommand
	}
	if window == "" {
		window = DefaultWindow
	}
	return &WindowFocuser{
		Command: command,
		Window:  window,
		Timeout: defaultTimeout,
		run:     runCommand,
	}
}

// Target returns the window title being focused
func (f *WindowFocuser) Target() string {
	return f.Window
}

// Focus asks the window manager to activate the window and waits for the
// command to finish, bounded by Timeout
func (f *WindowFocuser) Focus() error {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	run := f.run
	if run == nil {
		run = runCommand
	}
	if err := run(ctx, f.Command, "-a", f.Window); err != nil {
		return fmt.Errorf("focus %q: %w", f.Window, err)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ctx.Err()
	}
	return err
}
