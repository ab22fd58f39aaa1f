//go:build windows

package w32

import (
	"unsafe"

	win "github.com/AllenDang/w32"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/cs"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	procRegisterClassEx = moduser32.NewProc("RegisterClassExW")
	procUnregisterClass = moduser32.NewProc("UnregisterClassW")
)

// WindowProc is the signature of a window procedure passed to
// windows.NewCallback.
type WindowProc func(hwnd windows.HWND, uMsg uint32, wParam, lParam uintptr) uintptr

// https://msdn.microsoft.com/en-us/library/windows/desktop/ms633574(v=vs.85).aspx
// NOTE: No support for extra bytes, windows are looked up by handle instead
type WindowClass struct {
	Name       string
	Style      cs.ClassStyle
	Icon       *Icon
	IconSm     *Icon
	Cursor     *Cursor
	Background *Brush
	Proc       WindowProc

	atom uintptr
}

func (wc *WindowClass) Register() error {
	if wc.atom != 0 {
		return errors.Errorf("window class %q is already registered", wc.Name)
	}
	if wc.Proc == nil {
		return errors.New("window class has no window procedure")
	}
	className, err := windows.UTF16PtrFromString(wc.Name)
	if err != nil {
		return errors.Wrap(err, "invalid class name")
	}

	wcex := win.WNDCLASSEX{
		Style:      uint32(wc.Style),
		Instance:   win.HINSTANCE(inst.handle()),
		WndProc:    windows.NewCallback(wc.Proc),
		Icon:       wc.Icon.handle(),
		Cursor:     wc.Cursor.handle(),
		Background: wc.Background.handle(),
		ClassName:  className,
		IconSm:     wc.IconSm.handle(),
	}
	wcex.Size = uint32(unsafe.Sizeof(wcex))
	r0, _, el := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wcex)))
	if r0 == 0 {
		return lastError(el, "RegisterClassExW")
	}
	wc.atom = r0
	return nil
}

func (wc *WindowClass) UnRegister() error {
	if wc.atom == 0 {
		return nil
	}
	r0, _, el := procUnregisterClass.Call(
		wc.atom,
		uintptr(inst.handle()))
	if r0 == 0 {
		return lastError(el, "UnregisterClassW")
	}
	wc.atom = 0
	return nil
}

// Atom identifies the registered class in CreateWindow.
func (wc *WindowClass) Atom() uintptr {
	return wc.atom
}
