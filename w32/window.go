//go:build windows

package w32

import (
	"unsafe"

	win "github.com/AllenDang/w32"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/ws"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wsex"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	procCreateWindowEx   = moduser32.NewProc("CreateWindowExW")
	procDestroyWindow    = moduser32.NewProc("DestroyWindow")
	procSetWindowPos     = moduser32.NewProc("SetWindowPos")
	procGetWindowLongPtr = moduser32.NewProc(longPtrProc("GetWindowLong"))
	procSetWindowLongPtr = moduser32.NewProc(longPtrProc("SetWindowLong"))
)

// GetWindowLongPtrW only exists in the 64-bit user32.
func longPtrProc(name string) string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return name + "PtrW"
	}
	return name + "W"
}

// WPUseDefault is CW_USEDEFAULT as passed through a uintptr argument.
const WPUseDefault = 0x80000000

// UseDefault lets the system pick a window position or size.
const UseDefault int32 = -WPUseDefault

const gwlStyle = -16

type WindowProps struct {
	Name          string
	Style         ws.WindowStyle
	ExtendedStyle wsex.ExtendedWindowStyle
	X             int32
	Y             int32
	Width         int32
	Height        int32
	Parent        windows.HWND
	Param         uintptr
}

func position(v int32) uintptr {
	if uint32(v) == WPUseDefault {
		return WPUseDefault
	}
	return uintptr(v)
}

// CreateWindow creates a window of the registered class wc. Param is handed
// to the window procedure as CREATESTRUCT.lpCreateParams.
func CreateWindow(wc *WindowClass, props WindowProps) (windows.HWND, error) {
	if wc == nil || wc.atom == 0 {
		return 0, errors.New("window class was not registered")
	}
	name, err := windows.UTF16PtrFromString(props.Name)
	if err != nil {
		return 0, errors.Wrap(err, "invalid window name")
	}
	r0, _, el := procCreateWindowEx.Call(
		uintptr(props.ExtendedStyle),
		wc.atom,
		uintptr(unsafe.Pointer(name)),
		uintptr(props.Style),
		position(props.X),
		position(props.Y),
		position(props.Width),
		position(props.Height),
		uintptr(props.Parent),
		0,
		uintptr(inst.handle()),
		props.Param)
	if r0 == 0 {
		return 0, lastError(el, "CreateWindowExW")
	}
	return windows.HWND(r0), nil
}

// CreateParam reads lpCreateParams from the CREATESTRUCT passed with
// WM_NCCREATE and WM_CREATE.
func CreateParam(lParam uintptr) uintptr {
	if lParam == 0 {
		return 0
	}
	cs := (*win.CREATESTRUCT)(unsafe.Pointer(lParam))
	return cs.CreateParams
}

func DestroyWindow(hwnd windows.HWND) error {
	r0, _, el := procDestroyWindow.Call(uintptr(hwnd))
	if r0 == 0 {
		return lastError(el, "DestroyWindow")
	}
	return nil
}

func DefWindowProc(hwnd windows.HWND, uMsg uint32, wParam, lParam uintptr) uintptr {
	return win.DefWindowProc(win.HWND(hwnd), uMsg, wParam, lParam)
}

func ShowWindow(hwnd windows.HWND, cmd int) {
	win.ShowWindow(win.HWND(hwnd), cmd)
}

func GetWindowStyle(hwnd windows.HWND) (ws.WindowStyle, error) {
	index := gwlStyle
	clearLastError()
	r0, _, el := procGetWindowLongPtr.Call(uintptr(hwnd), uintptr(index))
	if r0 == 0 {
		if errno, ok := el.(windows.Errno); ok && errno != 0 {
			return 0, lastError(el, "GetWindowLongPtrW")
		}
	}
	return ws.WindowStyle(r0), nil
}

func SetWindowStyle(hwnd windows.HWND, style ws.WindowStyle) error {
	index := gwlStyle
	clearLastError()
	r0, _, el := procSetWindowLongPtr.Call(uintptr(hwnd), uintptr(index), uintptr(style))
	if r0 == 0 {
		if errno, ok := el.(windows.Errno); ok && errno != 0 {
			return lastError(el, "SetWindowLongPtrW")
		}
	}
	return nil
}

// SetWindowPos moves and sizes hwnd without changing its z-order and
// applies a pending style change.
func SetWindowPos(hwnd windows.HWND, x, y, width, height int32) error {
	flags := uintptr(win.SWP_NOZORDER | win.SWP_NOOWNERZORDER | win.SWP_FRAMECHANGED | win.SWP_SHOWWINDOW)
	r0, _, el := procSetWindowPos.Call(
		uintptr(hwnd),
		0,
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		flags)
	if r0 == 0 {
		return lastError(el, "SetWindowPos")
	}
	return nil
}

// MonitorRect returns the bounds of the monitor nearest to hwnd.
func MonitorRect(hwnd windows.HWND) (win.RECT, error) {
	monitor := win.MonitorFromWindow(win.HWND(hwnd), win.MONITOR_DEFAULTTONEAREST)
	if monitor == 0 {
		return win.RECT{}, errors.New("no monitor for window")
	}
	mi := win.MONITORINFO{}
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	if !win.GetMonitorInfo(monitor, &mi) {
		return win.RECT{}, errors.New("GetMonitorInfo failed")
	}
	return mi.RcMonitor, nil
}

func ScreenSize() (int32, int32) {
	return int32(win.GetSystemMetrics(win.SM_CXSCREEN)), int32(win.GetSystemMetrics(win.SM_CYSCREEN))
}

func InvalidateWindow(hwnd windows.HWND) error {
	if !win.InvalidateRect(win.HWND(hwnd), nil, true) {
		return errors.New("InvalidateRect failed")
	}
	return nil
}

// PeekMessage removes the next message of the calling thread's queue, if
// any, without blocking.
func PeekMessage(m *win.MSG) bool {
	return win.PeekMessage(m, 0, 0, 0, win.PM_REMOVE)
}

func DispatchMessage(m *win.MSG) {
	win.TranslateMessage(m)
	win.DispatchMessage(m)
}

func PostQuitMessage(code int) {
	win.PostQuitMessage(code)
}
