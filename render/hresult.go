package render

import (
	"fmt"

	"github.com/pkg/errors"
)

// HResult is a COM / DXGI status code returned as an error by Driver
// implementations.
type HResult uint32

// https://learn.microsoft.com/en-us/windows/win32/direct3ddxgi/dxgi-error
// https://learn.microsoft.com/en-us/windows/win32/direct3ddxgi/dxgi-status
const (
	StatusOccluded             HResult = 0x087A0001
	StatusModeChangeInProgress HResult = 0x087A0008

	ErrInvalidCall           HResult = 0x887A0001
	ErrDeviceRemoved         HResult = 0x887A0005
	ErrDeviceHung            HResult = 0x887A0006
	ErrDeviceReset           HResult = 0x887A0007
	ErrDriverInternal        HResult = 0x887A0020
	ErrNotCurrentlyAvailable HResult = 0x887A0022

	ErrFail        HResult = 0x80004005
	ErrInvalidArg  HResult = 0x80070057
	ErrNoInterface HResult = 0x80004002
	ErrOutOfMemory HResult = 0x8007000E
	ErrUnsupported HResult = 0x887A0004
	ErrNotFound    HResult = 0x887A0002
	ErrNotImpl     HResult = 0x80004001
)

var hresultNames = map[HResult]string{
	StatusOccluded:             "DXGI_STATUS_OCCLUDED",
	StatusModeChangeInProgress: "DXGI_STATUS_MODE_CHANGE_IN_PROGRESS",
	ErrInvalidCall:             "DXGI_ERROR_INVALID_CALL",
	ErrDeviceRemoved:           "DXGI_ERROR_DEVICE_REMOVED",
	ErrDeviceHung:              "DXGI_ERROR_DEVICE_HUNG",
	ErrDeviceReset:             "DXGI_ERROR_DEVICE_RESET",
	ErrDriverInternal:          "DXGI_ERROR_DRIVER_INTERNAL_ERROR",
	ErrNotCurrentlyAvailable:   "DXGI_ERROR_NOT_CURRENTLY_AVAILABLE",
	ErrFail:                    "E_FAIL",
	ErrInvalidArg:              "E_INVALIDARG",
	ErrNoInterface:             "E_NOINTERFACE",
	ErrOutOfMemory:             "E_OUTOFMEMORY",
	ErrUnsupported:             "DXGI_ERROR_UNSUPPORTED",
	ErrNotFound:                "DXGI_ERROR_NOT_FOUND",
	ErrNotImpl:                 "E_NOTIMPL",
}

func (h HResult) Error() string {
	if name, ok := hresultNames[h]; ok {
		return fmt.Sprintf("%s (%#08x)", name, uint32(h))
	}
	return fmt.Sprintf("HRESULT %#08x", uint32(h))
}

// Code makes HResult usable with debug.ErrorCode.
func (h HResult) Code() uint32 {
	return uint32(h)
}

func (h HResult) Failed() bool {
	return int32(h) < 0
}

// DeviceLost reports whether h means the device must be recreated.
func (h HResult) DeviceLost() bool {
	return h == ErrDeviceRemoved || h == ErrDeviceReset || h == ErrDeviceHung
}

// Code returns the HResult at the root of err.
func Code(err error) (HResult, bool) {
	if err == nil {
		return 0, false
	}
	hr, ok := errors.Cause(err).(HResult)
	return hr, ok
}
