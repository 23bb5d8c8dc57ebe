// Package log provides categorized, leveled logging for soroban.
//
// The TUI owns the terminal, so log output goes to a file (default
// ~/.local/state/soroban/soroban.log). Logging is disabled until Setup
// is called; all functions are safe no-ops before that.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Category identifies the subsystem a log line belongs to.
type Category string

// Log categories.
const (
	CatUI     Category = "ui"
	CatAbacus Category = "abacus"
	CatConfig Category = "config"
	CatDB     Category = "db"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
	closer io.Closer
)

// Setup opens the log file and installs the global logger at the given
// level ("debug", "info", "warn", "error"). Creates the parent
// directory if needed.
func Setup(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: path comes from config
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(level)}))
	closer = f
	return nil
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logAt(level slog.Level, cat Category, msg string, kvs ...any) {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	args := make([]any, 0, len(kvs)+2)
	args = append(args, "cat", string(cat))
	args = append(args, kvs...)
	l.Log(context.Background(), level, msg, args...)
}

// Debug logs a debug-level message with key-value pairs.
func Debug(cat Category, msg string, kvs ...any) { logAt(slog.LevelDebug, cat, msg, kvs...) }

// Info logs an info-level message with key-value pairs.
func Info(cat Category, msg string, kvs ...any) { logAt(slog.LevelInfo, cat, msg, kvs...) }

// Warn logs a warning-level message with key-value pairs.
func Warn(cat Category, msg string, kvs ...any) { logAt(slog.LevelWarn, cat, msg, kvs...) }

// Error logs an error-level message with key-value pairs.
func Error(cat Category, msg string, kvs ...any) { logAt(slog.LevelError, cat, msg, kvs...) }

// ErrorErr logs an error-level message with the error attached.
func ErrorErr(cat Category, msg string, err error, kvs ...any) {
	args := make([]any, 0, len(kvs)+2)
	args = append(args, "error", err)
	args = append(args, kvs...)
	logAt(slog.LevelError, cat, msg, args...)
}
