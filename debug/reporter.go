// Package debug reports engine failures to the developer log and, for the
// ones the player has to know about, to a native dialog.
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// Reporter receives the failures the engine cannot handle silently.
type Reporter interface {
	// Fatal tells the user that the application cannot continue, logs err
	// and terminates the process.
	Fatal(message string, err error)
	// Error records a recoverable failure for the developer. It is a no-op
	// unless debug reporting is enabled.
	Error(err error)
	// Alert shows message to the user without blocking the caller.
	Alert(message string)
}

type Helper struct {
	debug   bool
	dialogs bool
	exit    func(code int)
}

type Option func(h *Helper)

// WithDebug enables reporting of recoverable errors.
func WithDebug(enabled bool) Option {
	return func(h *Helper) { h.debug = enabled }
}

// WithDialogs enables native message boxes for fatal errors and alerts.
func WithDialogs(enabled bool) Option {
	return func(h *Helper) { h.dialogs = enabled }
}

// WithExit replaces os.Exit as the terminating call of Fatal.
func WithExit(exit func(code int)) Option {
	return func(h *Helper) { h.exit = exit }
}

func New(opts ...Option) *Helper {
	h := &Helper{dialogs: true, exit: os.Exit}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Helper) Fatal(message string, err error) {
	Logger().Error(message, errorAttrs(err)...)
	if h.dialogs {
		showFatal(message)
	}
	h.exit(1)
}

func (h *Helper) Error(err error) {
	if !h.debug || err == nil {
		return
	}
	Logger().Debug("recoverable error", errorAttrs(err)...)
}

func (h *Helper) Alert(message string) {
	Logger().Warn(message)
	if h.dialogs {
		go showAlert(message)
	}
}

// Coder is implemented by errors that carry a platform status code.
type Coder interface {
	Code() uint32
}

// ErrorCode extracts the OS or driver status code behind err.
func ErrorCode(err error) (uint32, bool) {
	switch e := errors.Cause(err).(type) {
	case Coder:
		return e.Code(), true
	case syscall.Errno:
		return uint32(e), true
	}
	return 0, false
}

func errorAttrs(err error) []any {
	if err == nil {
		return nil
	}
	attrs := []any{slog.String("error", err.Error())}
	if code, ok := ErrorCode(err); ok {
		attrs = append(attrs, slog.String("code", fmt.Sprintf("%#08x", code)))
	}
	return attrs
}
