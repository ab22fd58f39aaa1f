//go:build windows

package w32

import (
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
)

var (
	procGetModuleHandle = modkernel32.NewProc("GetModuleHandleW")
	procSetLastError    = modkernel32.NewProc("SetLastError")
)

var inst *Module

func init() {
	var err error
	inst, err = GetModule("")
	if err != nil {
		panic(err)
	}
}

type Module struct {
	h windows.Handle
}

func (m *Module) handle() windows.Handle {
	if m == nil {
		return 0
	}
	return m.h
}

// Instance returns the module handle of the running executable.
func Instance() windows.Handle {
	return inst.handle()
}

func GetModule(name string) (*Module, error) {
	var mn *uint16
	if name != "" {
		n, err := windows.UTF16PtrFromString(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid module name")
		}
		mn = n
	}
	var h windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, mn, &h); err != nil {
		return nil, errors.Wrap(err, "error calling kernel32")
	}
	return &Module{h: h}, nil
}

// lastError turns the error returned by a failed LazyProc.Call into a
// wrapped Errno. A zero errno still signals failure, as EINVAL.
func lastError(err error, call string) error {
	if errno, ok := err.(syscall.Errno); ok && errno != 0 {
		return errors.Wrap(errno, call)
	}
	return errors.Wrap(syscall.EINVAL, call)
}

func clearLastError() {
	procSetLastError.Call(0)
}
