package gaussbg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled is always false, so log calls
// return before their attributes are built.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler     { return h }
func (h silentHandler) WithGroup(string) slog.Handler          { return h }

var silent = slog.New(silentHandler{})

var pkgLogger atomic.Pointer[slog.Logger]

func init() { pkgLogger.Store(silent) }

// SetLogger sets the logger new backgrounds derive their own logger from.
// A nil logger turns logging off again, which is the initial state.
//
// Backgrounds log frames at Debug, play, pause and layer rebuilds at Info
// and failed frames at Warn when no error handler is set. A background
// keeps the logger it was created with; use WithLogger to give one a
// different logger.
//
//	gaussbg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	pkgLogger.Store(l)
}

// Logger returns the logger set by SetLogger. It never returns nil.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
