package w32

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	procRegisterRawInputDevices = moduser32.NewProc("RegisterRawInputDevices")
	procGetRawInputData         = moduser32.NewProc("GetRawInputData")
)

const ridInput = 0x10000003

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-rawinputdevice
type rawInputDevice struct {
	usagePage uint16
	usage     uint16
	flags     uint32
	target    windows.HWND
}

// RegisterRawInput subscribes hwnd to raw keyboard and mouse input.
func RegisterRawInput(hwnd windows.HWND) error {
	devices := [...]rawInputDevice{
		{usagePage: HIDUsagePageGeneric, usage: HIDUsageMouse, target: hwnd},
		{usagePage: HIDUsagePageGeneric, usage: HIDUsageKeyboard, target: hwnd},
	}
	r0, _, el := procRegisterRawInputDevices.Call(
		uintptr(unsafe.Pointer(&devices[0])),
		uintptr(len(devices)),
		unsafe.Sizeof(devices[0]))
	if r0 == 0 {
		return lastError(el, "RegisterRawInputDevices")
	}
	return nil
}

// ReadRawInput copies the RAWINPUT record behind the lParam of WM_INPUT
// into buf, growing it as needed, and returns the filled part.
func ReadRawInput(lParam uintptr, buf []byte) ([]byte, error) {
	var size uint32
	r0, _, el := procGetRawInputData.Call(lParam, ridInput, 0, uintptr(unsafe.Pointer(&size)), HeaderSize)
	if int32(r0) == -1 {
		return buf[:0], lastError(el, "GetRawInputData")
	}
	if size == 0 {
		return buf[:0], nil
	}
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	}
	buf = buf[:size]
	r0, _, el = procGetRawInputData.Call(lParam, ridInput, uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)), HeaderSize)
	if int32(r0) == -1 {
		return buf[:0], lastError(el, "GetRawInputData")
	}
	if uint32(r0) != size {
		return buf[:0], errors.Errorf("GetRawInputData copied %d of %d bytes", uint32(r0), size)
	}
	return buf[:r0], nil
}
