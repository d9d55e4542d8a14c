package atxt

import "context"
import "log/slog"
import "sync/atomic"

// Discards all records. Enabled returns false so callers skip
// message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by atxt. By default atxt
// doesn't log anything. Pass nil to restore the silent default.
//
// Log levels used:
//  - [slog.LevelDebug]: glyph cache misses and atlas growth.
//  - [slog.LevelInfo]: fonts loaded.
//  - [slog.LevelWarn]: characters missing in every loaded font.
//
// The logger is captured by [Fonts] objects when they are created,
// so it should be set before calling [NewFonts]().
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
