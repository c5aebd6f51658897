package n64gfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for n64gfx and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by n64gfx:
//   - [slog.LevelDebug]: surface and heap bookkeeping, VI register writes
//   - [slog.LevelInfo]: lifecycle events (debug channel found, video mode set)
//   - [slog.LevelError]: the last word before an unrecoverable abort
//
// On hardware the usual target is the IS-Viewer channel:
//
//	ch := isv.NewChannel(bus)
//	ch.Init()
//	n64gfx.SetLogger(slog.New(slog.NewTextHandler(ch, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by n64gfx.
// Sub-packages call this so one SetLogger configures everything.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
