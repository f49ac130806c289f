// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup("debug")             // stderr, color when it is a terminal
//	logger := logging.New(w, level, false)
//
// Levels: debug, info, warn, error (anything else means info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs a tint logger on stderr as the slog default.
func Setup(level string) {
	color := isatty.IsTerminal(os.Stderr.Fd())
	slog.SetDefault(New(os.Stderr, ParseLevel(level), color))
}

// New returns a tint logger writing to w.
func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    !color,
	}))
}

// ParseLevel maps a level name to its slog level, case-insensitively.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
