package debug

import (
	"bytes"
	"log/slog"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusError uint32

func (e statusError) Error() string { return "status" }
func (e statusError) Code() uint32  { return uint32(e) }

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	l, err := NewLogger(buf, "debug", "text")
	require.NoError(t, err)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })
	return buf
}

func TestFatalLogsAndExits(t *testing.T) {
	logs := captureLogs(t)
	code := -1
	h := New(WithDialogs(false), WithExit(func(c int) { code = c }))

	h.Fatal("Failed to start the graphics system.", errors.Wrap(statusError(0x887A0020), "create device"))

	assert.Equal(t, 1, code)
	assert.Contains(t, logs.String(), "Failed to start the graphics system.")
	assert.Contains(t, logs.String(), "code=0x887a0020")
}

func TestErrorOnlyInDebug(t *testing.T) {
	logs := captureLogs(t)

	New(WithDialogs(false)).Error(errors.New("swap chain resize"))
	assert.Empty(t, logs.String())

	New(WithDialogs(false), WithDebug(true)).Error(errors.New("swap chain resize"))
	assert.Contains(t, logs.String(), "swap chain resize")
}

func TestAlertDoesNotBlock(t *testing.T) {
	logs := captureLogs(t)
	New(WithDialogs(false)).Alert("Application failed to enter fullscreen mode.")
	assert.Contains(t, logs.String(), "fullscreen")
}

func TestErrorCode(t *testing.T) {
	code, ok := ErrorCode(errors.Wrap(syscall.Errno(5), "RegisterClassExW"))
	assert.True(t, ok)
	assert.Equal(t, uint32(5), code)

	_, ok = ErrorCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)
	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)

	buf := &bytes.Buffer{}
	l, err := NewLogger(buf, "warn", "json")
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", slog.Int("n", 1))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
