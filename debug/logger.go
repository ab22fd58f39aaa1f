package debug

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger shared by every engine package. By default the
// engine logs nothing; nil restores that.
//
// Levels used by the engine:
//   - [slog.LevelDebug]: message pump, mode transitions, swap chain state
//   - [slog.LevelInfo]: window and device lifecycle
//   - [slog.LevelWarn]: device loss and other recovered failures
//   - [slog.LevelError]: failures reported to the user
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// NewLogger builds a logger writing to w. Format is "text" or "json", level
// one of "debug", "info", "warn" or "error".
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, errors.Errorf("invalid log format %q", format)
}
