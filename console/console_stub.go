//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Native builds have no browser console; messages go to a slog.Logger instead.
// The actual browser implementation is in console.go with js/wasm build tags.

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used in native builds. A nil logger restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func current() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Debug logs at debug level.
func Debug(args ...any) {
	current().Debug(join(args))
}

// Log logs at info level.
func Log(args ...any) {
	current().Info(join(args))
}

// Warn logs at warn level.
func Warn(args ...any) {
	current().Warn(join(args))
}

// Error logs at error level.
func Error(args ...any) {
	current().Error(join(args))
}

// join spaces arguments the way the browser console does.
func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
