package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"jimmyclipboard/internal/ansi"
	"jimmyclipboard/internal/clipboard"
	"jimmyclipboard/internal/config"
	"jimmyclipboard/internal/focus"
	"jimmyclipboard/internal/format"
	"jimmyclipboard/internal/log"
	"jimmyclipboard/internal/route"
	"jimmyclipboard/internal/routefile"
	"jimmyclipboard/internal/session"
	"jimmyclipboard/internal/theme"
	"jimmyclipboard/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errNotATerminal = errors.New("this application requires a terminal/TTY to run")

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintln(os.Stderr, "jimmyclipboard crashed, see the log file for details")
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var focusSteal bool

	cmd := &cobra.Command{
		Use:           "jimmyclipboard <route.csv>",
		Short:         "Step through a spansh neutron route, copying each next system to the clipboard",
		Args:          cobra.ExactArgs(1),
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(args[0], focusSteal, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&focusSteal, "focus-steal", "f", false, "hand focus back to the game window after each copy")
	cmd.AddCommand(newSummaryCmd())
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <route.csv>",
		Short: "Print the route summary and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := theme.Use(cfg.Theme); err != nil {
				return err
			}

			// stdout carries the summary, keep stderr for errors only
			if err := log.SetFileOutput(cfg.LogFile); err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer log.Close()

			_, summary, err := loadRoute(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				out = ansi.NewWriter(out)
			}
			_, err = fmt.Fprintln(out, format.Default().Summary(summary))
			return err
		},
	}
}

func runUI(path string, focusSteal bool, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := theme.Use(cfg.Theme); err != nil {
		return err
	}

	if err := log.SetFileOutput(cfg.LogFile); err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer log.Close()

	r, summary, err := loadRoute(path)
	if err != nil {
		return err
	}

	if !isTerminal(stdout) {
		return errNotATerminal
	}

	if !clipboard.Available() {
		log.Warn("No clipboard backend found, system names will only be shown on screen")
	}

	var focuser session.Focuser
	if focusSteal || cfg.FocusSteal {
		focuser = focus.New(cfg.FocusCommand, cfg.FocusWindow)
	}

	s := session.New(r, clipboard.New(), focuser)
	return tui.NewApplication(s, summary, format.Default()).Run()
}

func loadRoute(path string) (route.Route, route.Summary, error) {
	r, err := routefile.Load(path)
	if err != nil {
		return nil, route.Summary{}, err
	}
	summary, err := route.Summarize(r)
	if err != nil {
		return nil, route.Summary{}, err
	}
	return r, summary, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
