package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger wraps the process-wide slog logger and the file it writes to
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

var (
	mu           sync.Mutex
	globalLogger *Logger
)

// init logs to stderr until SetFileOutput moves output out of the way of the TUI
func init() {
	globalLogger = &Logger{logger: slog.New(newHandler(os.Stderr))}
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format("2006/01/02 15:04:05.000000"))
			}
			return a
		},
	})
}

// SetFileOutput sends all further log output to filename, appending
func SetFileOutput(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	swap(&Logger{logger: slog.New(newHandler(file)), file: file})
	return nil
}

// SetOutput sends all further log output to w. The caller owns w.
func SetOutput(w io.Writer) {
	swap(&Logger{logger: slog.New(newHandler(w))})
}

func swap(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger != nil && globalLogger.file != nil {
		globalLogger.file.Close()
	}
	globalLogger = l
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		return nil
	}
	return globalLogger.logger
}

func Debug(msg string, args ...any) {
	if l := current(); l != nil {
		l.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if l := current(); l != nil {
		l.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if l := current(); l != nil {
		l.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if l := current(); l != nil {
		l.Error(msg, args...)
	}
}

// Close closes the log file, if any, and falls back to stderr
func Close() {
	swap(&Logger{logger: slog.New(newHandler(os.Stderr))})
}
