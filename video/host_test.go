package video

import (
	"github.com/Stavrolet/ByteEngineD3D11/w32"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wm"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/ws"
	"github.com/pkg/errors"
)

// fakeHost imitates the Win32 host: window operations synchronously send
// the messages the OS would send, through the registered class.
type fakeHost struct {
	class   *Class
	handle  Handle
	rect    Rect
	style   ws.WindowStyle
	monitor Rect
	screenW int
	screenH int
	queue   []Message
	raw     map[uintptr]w32.RawInput
	active  bool

	calls []string

	registerErr error
	createErr   error
	rawErr      error
	monitorErr  error
	// skipCreateParam drops the creation token, as a host without
	// lpCreateParams support would.
	skipCreateParam bool
	// unattached collects messages that reached DefWindowProc for an
	// unknown handle.
	unattached []uint32
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		monitor: Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		screenW: 1920,
		screenH: 1080,
		raw:     make(map[uintptr]w32.RawInput),
	}
}

func (h *fakeHost) record(call string) {
	h.calls = append(h.calls, call)
}

func (h *fakeHost) send(msg uint32, wParam, lParam uintptr) uintptr {
	return h.class.Dispatch(h.handle, msg, wParam, lParam)
}

func sizeParam(width, height int) uintptr {
	return uintptr(uint32(height)<<16 | uint32(width)&0xffff)
}

func (h *fakeHost) resize(kind uintptr, r Rect) {
	h.rect = r
	h.send(wm.Size, kind, sizeParam(r.Width, r.Height))
}

func (h *fakeHost) RegisterClass(class *Class) error {
	h.record("RegisterClass")
	if h.registerErr != nil {
		return h.registerErr
	}
	h.class = class
	return nil
}

func (h *fakeHost) UnregisterClass(class *Class) error {
	h.record("UnregisterClass")
	return nil
}

func (h *fakeHost) CreateWindow(class *Class, props CreateProps) (Handle, error) {
	h.record("CreateWindow")
	if h.createErr != nil {
		return 0, h.createErr
	}
	h.handle = 0x100
	h.active = true
	h.style = props.Style
	h.rect = Rect{X: props.X, Y: props.Y, Width: props.Width, Height: props.Height}
	h.send(wm.GetMinMaxInfo, 0, 0)
	param := props.Param
	if h.skipCreateParam {
		param = 0
	}
	h.send(wm.NCCreate, 0, param)
	h.send(wm.Create, 0, param)
	h.resize(wm.SizeRestored, h.rect)
	return h.handle, nil
}

func (h *fakeHost) DestroyWindow(hwnd Handle) error {
	h.record("DestroyWindow")
	h.send(wm.Destroy, 0, 0)
	h.send(wm.NCDestroy, 0, 0)
	return nil
}

func (h *fakeHost) DefWindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	if _, err := h.class.Lookup(hwnd); errors.Is(err, ErrNotAttached) && msg != wm.NCCreate {
		h.unattached = append(h.unattached, msg)
	}
	if msg == wm.NCCreate {
		return 1
	}
	return 0
}

func (h *fakeHost) CreateParam(lParam uintptr) uintptr {
	return lParam
}

func (h *fakeHost) RegisterRawInput(hwnd Handle) error {
	h.record("RegisterRawInput")
	return h.rawErr
}

func (h *fakeHost) RawInput(lParam uintptr) (w32.RawInput, error) {
	ri, ok := h.raw[lParam]
	if !ok {
		return w32.RawInput{}, errors.New("no raw input")
	}
	return ri, nil
}

func (h *fakeHost) ShowWindow(hwnd Handle, cmd ShowCommand) {
	switch cmd {
	case ShowMaximize:
		h.record("ShowWindow(maximize)")
		h.activate(true)
		h.resize(wm.SizeMaximized, h.monitor)
	case ShowMinimize:
		h.record("ShowWindow(minimize)")
		h.activate(false)
		h.resize(wm.SizeMinimized, Rect{})
	case ShowRestore:
		h.record("ShowWindow(restore)")
		h.activate(true)
		h.resize(wm.SizeRestored, Rect{X: 100, Y: 100, Width: 800, Height: 600})
	}
}

// activate sends WM_ACTIVATE when the activation state changes, as the OS
// does while showing, minimizing or restoring a window.
func (h *fakeHost) activate(on bool) {
	if h.active == on {
		return
	}
	h.active = on
	state := uintptr(wm.ActivateInactive)
	if on {
		state = wm.ActivateActive
	}
	h.send(wm.Activate, state, 0)
}

func (h *fakeHost) Style(hwnd Handle) (ws.WindowStyle, error) {
	h.record("Style")
	return h.style, nil
}

func (h *fakeHost) SetStyle(hwnd Handle, style ws.WindowStyle) error {
	h.record("SetStyle")
	h.style = style
	return nil
}

func (h *fakeHost) SetPosition(hwnd Handle, r Rect) error {
	h.record("SetPosition")
	h.resize(wm.SizeRestored, r)
	return nil
}

func (h *fakeHost) MonitorRect(hwnd Handle) (Rect, error) {
	h.record("MonitorRect")
	return h.monitor, h.monitorErr
}

func (h *fakeHost) ScreenSize() (int, int) {
	return h.screenW, h.screenH
}

func (h *fakeHost) Invalidate(hwnd Handle) error {
	h.record("Invalidate")
	return nil
}

func (h *fakeHost) PeekMessage() (Message, bool) {
	if len(h.queue) == 0 {
		return Message{}, false
	}
	m := h.queue[0]
	h.queue = h.queue[1:]
	return m, true
}

func (h *fakeHost) DispatchMessage(m Message) {
	if m.ID == wm.Activate {
		h.active = wm.LoWord(m.WParam) != wm.ActivateInactive
	}
	h.class.Dispatch(m.Handle, m.ID, m.WParam, m.LParam)
}

func (h *fakeHost) PostQuitMessage(code int) {
	h.record("PostQuitMessage")
	h.queue = append(h.queue, Message{ID: wm.Quit, WParam: uintptr(code)})
}

func (h *fakeHost) post(msg uint32, wParam, lParam uintptr) {
	h.queue = append(h.queue, Message{Handle: h.handle, ID: msg, WParam: wParam, LParam: lParam})
}

type fakeReporter struct {
	fatals []string
	errs   []error
	alerts []string
}

func (r *fakeReporter) Fatal(message string, err error) { r.fatals = append(r.fatals, message) }
func (r *fakeReporter) Error(err error)                 { r.errs = append(r.errs, err) }
func (r *fakeReporter) Alert(message string)            { r.alerts = append(r.alerts, message) }
