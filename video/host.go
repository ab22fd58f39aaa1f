package video

import (
	"github.com/Stavrolet/ByteEngineD3D11/w32"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/ws"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wsex"
)

// Handle is an OS window handle.
type Handle uintptr

type Rect struct {
	X, Y          int
	Width, Height int
}

type ShowCommand uint8

const (
	ShowRestore ShowCommand = iota
	ShowMaximize
	ShowMinimize
)

// UseDefault lets the OS choose a window position.
const UseDefault = -0x80000000

// Message is one entry of the thread message queue.
type Message struct {
	Handle Handle
	ID     uint32
	WParam uintptr
	LParam uintptr
	Time   uint32
	X, Y   int32
}

type CreateProps struct {
	Title         string
	Style         ws.WindowStyle
	ExtendedStyle wsex.ExtendedWindowStyle
	X, Y          int
	Width, Height int
	Parent        Handle
	// Param is delivered back through Host.CreateParam while the window is
	// being created.
	Param uintptr
}

// Host is the windowing system the Window drives. The Win32 implementation
// is returned by NewHost on Windows; tests supply their own.
type Host interface {
	RegisterClass(class *Class) error
	UnregisterClass(class *Class) error
	CreateWindow(class *Class, props CreateProps) (Handle, error)
	DestroyWindow(h Handle) error
	DefWindowProc(h Handle, msg uint32, wParam, lParam uintptr) uintptr
	// CreateParam extracts CreateProps.Param from the lParam of the
	// non-client create message.
	CreateParam(lParam uintptr) uintptr

	RegisterRawInput(h Handle) error
	RawInput(lParam uintptr) (w32.RawInput, error)

	ShowWindow(h Handle, cmd ShowCommand)
	Style(h Handle) (ws.WindowStyle, error)
	SetStyle(h Handle, style ws.WindowStyle) error
	SetPosition(h Handle, r Rect) error
	MonitorRect(h Handle) (Rect, error)
	ScreenSize() (width, height int)
	Invalidate(h Handle) error

	// PeekMessage removes the next queued message without blocking.
	PeekMessage() (Message, bool)
	DispatchMessage(m Message)
	PostQuitMessage(code int)
}
