// Package logger holds tonbocctl's process-wide logger. It defaults to
// discarding everything; Init enables structured output once the root
// command has parsed --verbose.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance, initialized to discard all output.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init enables debug-level logging to stderr when verbose is true, and
// discards all output otherwise. The root command calls it from
// PersistentPreRun, after flag parsing and before any command runs.
func Init(verbose bool) {
	if !verbose {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
