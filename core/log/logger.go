package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	SetOutput(os.Stdout, slog.LevelInfo)
}

func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}

// With returns a logger that attaches args to every line, e.g. an event id
func With(args ...any) *slog.Logger {
	return logger.Load().With(args...)
}

func SetLevel(level slog.Level) {
	SetOutput(os.Stdout, level)
}

// SetOutput swaps the destination of all log lines. Used by tests to capture output.
func SetOutput(w io.Writer, level slog.Level) {
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
