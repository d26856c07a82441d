//go:build !ios && !android && (amd64 || arm64)

package glfw

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger used for library diagnostics: library loading,
// window and cursor lifetime, dropped events and GLFW errors that no error
// callback handled. Pass nil to discard diagnostics again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	return pkgLogger.Load()
}
