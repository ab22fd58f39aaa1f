package video

import (
	win "github.com/AllenDang/w32"
	"github.com/Stavrolet/ByteEngineD3D11/w32"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/cs"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/ws"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type win32Host struct {
	classes map[*Class]*w32.WindowClass
	rawBuf  []byte
}

// NewHost returns the Win32 windowing host.
func NewHost() Host {
	return &win32Host{classes: make(map[*Class]*w32.WindowClass)}
}

func (h *win32Host) RegisterClass(class *Class) error {
	wc := &w32.WindowClass{
		Name:       class.Name,
		Style:      cs.HReDraw | cs.VReDraw,
		Icon:       w32.ApplicationIcon(),
		IconSm:     w32.ApplicationIcon(),
		Cursor:     w32.ArrowCursor(),
		Background: w32.BlackBrush(),
		Proc: func(hwnd windows.HWND, uMsg uint32, wParam, lParam uintptr) uintptr {
			return class.Dispatch(Handle(hwnd), uMsg, wParam, lParam)
		},
	}
	if err := wc.Register(); err != nil {
		return err
	}
	h.classes[class] = wc
	return nil
}

func (h *win32Host) UnregisterClass(class *Class) error {
	wc, ok := h.classes[class]
	if !ok {
		return nil
	}
	if err := wc.UnRegister(); err != nil {
		return err
	}
	delete(h.classes, class)
	return nil
}

func (h *win32Host) CreateWindow(class *Class, props CreateProps) (Handle, error) {
	wc, ok := h.classes[class]
	if !ok {
		return 0, errors.Errorf("window class %q was not registered", class.Name)
	}
	hwnd, err := w32.CreateWindow(wc, w32.WindowProps{
		Name:          props.Title,
		Style:         props.Style,
		ExtendedStyle: props.ExtendedStyle,
		X:             int32(props.X),
		Y:             int32(props.Y),
		Width:         int32(props.Width),
		Height:        int32(props.Height),
		Parent:        windows.HWND(props.Parent),
		Param:         props.Param,
	})
	return Handle(hwnd), err
}

func (h *win32Host) DestroyWindow(hwnd Handle) error {
	return w32.DestroyWindow(windows.HWND(hwnd))
}

func (h *win32Host) DefWindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	return w32.DefWindowProc(windows.HWND(hwnd), msg, wParam, lParam)
}

func (h *win32Host) CreateParam(lParam uintptr) uintptr {
	return w32.CreateParam(lParam)
}

func (h *win32Host) RegisterRawInput(hwnd Handle) error {
	return w32.RegisterRawInput(windows.HWND(hwnd))
}

func (h *win32Host) RawInput(lParam uintptr) (w32.RawInput, error) {
	buf, err := w32.ReadRawInput(lParam, h.rawBuf)
	h.rawBuf = buf
	if err != nil {
		return w32.RawInput{}, err
	}
	return w32.ParseRawInput(buf)
}

var showCommands = [...]int{
	ShowRestore:  win.SW_RESTORE,
	ShowMaximize: win.SW_MAXIMIZE,
	ShowMinimize: win.SW_MINIMIZE,
}

func (h *win32Host) ShowWindow(hwnd Handle, cmd ShowCommand) {
	w32.ShowWindow(windows.HWND(hwnd), showCommands[cmd])
}

func (h *win32Host) Style(hwnd Handle) (ws.WindowStyle, error) {
	return w32.GetWindowStyle(windows.HWND(hwnd))
}

func (h *win32Host) SetStyle(hwnd Handle, style ws.WindowStyle) error {
	return w32.SetWindowStyle(windows.HWND(hwnd), style)
}

func (h *win32Host) SetPosition(hwnd Handle, r Rect) error {
	return w32.SetWindowPos(windows.HWND(hwnd), int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))
}

func (h *win32Host) MonitorRect(hwnd Handle) (Rect, error) {
	rc, err := w32.MonitorRect(windows.HWND(hwnd))
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		X:      int(rc.Left),
		Y:      int(rc.Top),
		Width:  int(rc.Right - rc.Left),
		Height: int(rc.Bottom - rc.Top),
	}, nil
}

func (h *win32Host) ScreenSize() (int, int) {
	w, ht := w32.ScreenSize()
	return int(w), int(ht)
}

func (h *win32Host) Invalidate(hwnd Handle) error {
	return w32.InvalidateWindow(windows.HWND(hwnd))
}

func (h *win32Host) PeekMessage() (Message, bool) {
	var m win.MSG
	if !w32.PeekMessage(&m) {
		return Message{}, false
	}
	return Message{
		Handle: Handle(m.Hwnd),
		ID:     m.Message,
		WParam: m.WParam,
		LParam: m.LParam,
		Time:   m.Time,
		X:      m.Pt.X,
		Y:      m.Pt.Y,
	}, true
}

func (h *win32Host) DispatchMessage(m Message) {
	msg := win.MSG{
		Hwnd:    win.HWND(m.Handle),
		Message: m.ID,
		WParam:  m.WParam,
		LParam:  m.LParam,
		Time:    m.Time,
		Pt:      win.POINT{X: m.X, Y: m.Y},
	}
	w32.DispatchMessage(&msg)
}

func (h *win32Host) PostQuitMessage(code int) {
	w32.PostQuitMessage(code)
}
