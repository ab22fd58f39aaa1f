package render

import "github.com/Stavrolet/ByteEngineD3D11/event"

// Target is the window a Context presents into.
type Target interface {
	NativeHandle() uintptr
	Size() (width, height int)
	Mode() event.WindowMode
	SetWindowMode(m event.WindowMode)
}

// DisplayMode is the resolution and refresh rate the swap chain is
// negotiated against.
type DisplayMode struct {
	Width, Height int
	// Refresh rate as a rational number of hertz.
	RefreshNumerator   uint32
	RefreshDenominator uint32
}

type SwapChainConfig struct {
	Mode        DisplayMode
	BufferCount int
}

// Driver creates devices. The Direct3D 11 implementation lives in package
// d3d11.
type Driver interface {
	CreateDevice(debug bool) (Device, error)
}

// Device is a GPU device together with its immediate context.
type Device interface {
	// EnableDebugLayer makes the validation layer break on corruption and
	// error messages.
	EnableDebugLayer() error
	CreateSwapChain(hwnd uintptr, cfg SwapChainConfig) (SwapChain, error)
	// CreateViews creates render target and depth stencil views over the
	// current back buffer, binds them and sets a viewport of the given size.
	CreateViews(sc SwapChain, width, height int) (Views, error)
	UnbindTargets()
	Clear(v Views, color [4]float32)
	// RemovedReason is nil while the device is usable.
	RemovedReason() error
	Release()
}

type SwapChain interface {
	Present(syncInterval int) error
	// ResizeBuffers resizes the back buffers to the window's client area.
	ResizeBuffers() error
	Fullscreen() (bool, error)
	SetFullscreen(on bool) error
	Release()
}

// Views are the render target and depth stencil views of one back buffer.
type Views interface {
	Size() (width, height int)
	Release()
}
