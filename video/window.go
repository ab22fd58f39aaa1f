package video

import (
	"github.com/Stavrolet/ByteEngineD3D11/debug"
	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wm"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/ws"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wsex"
	"github.com/pkg/errors"
)

// Window is the single application window. It owns the per-frame event
// buffer filled by the message pump and the mode state machine.
//
// A Window must be used from the thread that called Initialize.
type Window struct {
	host     Host
	reporter debug.Reporter
	class    *Class
	handle   Handle

	width, height int

	mode         event.WindowMode
	previousMode event.WindowMode

	initialized bool
	// transitioning is set while SetWindowMode drives the OS, so the size
	// messages it provokes do not reclassify the mode.
	transitioning bool

	queue *event.Queue
}

func NewWindow(host Host, reporter debug.Reporter) *Window {
	return &Window{
		host:     host,
		reporter: reporter,
		mode:     event.Windowed,
		queue:    event.NewQueue(),
	}
}

// Initialize registers the window class, creates and shows the window and
// subscribes it to raw keyboard and mouse input. Failures are reported as
// fatal; the returned error is for callers that do not exit on Fatal.
func (w *Window) Initialize(name string, mode event.WindowMode, width, height int, parent *Window) error {
	w.mode = mode
	w.previousMode = mode

	w.class = NewClass(name, w.host)
	if err := w.class.Register(); err != nil {
		w.reporter.Fatal("Failed to create the application window.", err)
		return err
	}

	props := CreateProps{
		Title:         name,
		ExtendedStyle: wsex.AppWindow,
		Width:         width,
		Height:        height,
	}
	if mode.IsFullscreen() {
		props.Style = ws.Popup | ws.Visible
		props.Width, props.Height = w.host.ScreenSize()
	} else {
		props.Style = ws.OverlappedWindow
		props.X, props.Y = UseDefault, UseDefault
	}
	if parent != nil {
		props.Parent = parent.handle
	}

	token := w.class.reserve(w)
	props.Param = token
	h, err := w.host.CreateWindow(w.class, props)
	w.class.release(token)
	if err != nil {
		err = errors.Wrap(err, "unable to create window")
		w.reporter.Fatal("Failed to create the application window.", err)
		return err
	}
	if w.handle != h {
		// The host did not deliver the creation token; attach now.
		w.class.attach(h, w)
	}
	w.width, w.height = props.Width, props.Height

	w.host.ShowWindow(h, ShowMaximize)

	if err := w.host.RegisterRawInput(h); err != nil {
		err = errors.Wrap(err, "unable to register raw input devices")
		w.reporter.Fatal("Failed to initialize input devices.", err)
		return err
	}

	w.initialized = true
	debug.Logger().Info("window created", "name", name, "mode", mode, "width", w.width, "height", w.height)

	// A framed window is now maximized on screen; the requested mode is
	// applied as a regular transition.
	if !mode.IsFullscreen() {
		w.mode = event.Maximized
		w.SetWindowMode(mode)
	}
	return nil
}

// SetWindowMode switches the window to m and appends a ModeChanged event to
// the current frame's buffer. Requesting the current mode does nothing.
func (w *Window) SetWindowMode(m event.WindowMode) {
	if m == w.mode {
		return
	}
	if w.handle == 0 {
		debug.Logger().Debug("window mode change ignored, no window", "mode", m)
		return
	}

	from := w.mode
	w.transitioning = true
	err := w.applyMode(m)
	w.transitioning = false
	if err != nil {
		w.reporter.Error(errors.Wrapf(err, "unable to switch window from %s to %s", from, m))
		return
	}

	debug.Logger().Debug("window mode changed", "from", from, "to", m)
	if m == event.Minimized {
		w.previousMode = from
	}
	w.mode = m
	w.push(event.ModeChanged{Mode: m})
}

func (w *Window) applyMode(m event.WindowMode) error {
	from := w.mode
	if from == event.Minimized {
		w.host.ShowWindow(w.handle, ShowRestore)
		from = w.previousMode
	}

	switch m {
	case event.Windowed, event.Maximized:
		if from.IsFullscreen() {
			style, err := w.host.Style(w.handle)
			if err != nil {
				return err
			}
			style = style&^(ws.Popup|ws.Visible) | ws.OverlappedWindow
			if err := w.host.SetStyle(w.handle, style); err != nil {
				return err
			}
		}
		if m == event.Maximized {
			w.host.ShowWindow(w.handle, ShowMaximize)
		} else {
			w.host.ShowWindow(w.handle, ShowRestore)
		}
	case event.BorderlessFullscreen, event.ExclusiveFullscreen:
		if from.IsFullscreen() {
			return nil
		}
		bounds, err := w.host.MonitorRect(w.handle)
		if err != nil {
			w.reporter.Error(errors.Wrap(err, "unable to query monitor, using primary screen"))
			sw, sh := w.host.ScreenSize()
			bounds = Rect{Width: sw, Height: sh}
		}
		style, err := w.host.Style(w.handle)
		if err != nil {
			return err
		}
		style = style&^ws.OverlappedWindow | ws.Popup
		if err := w.host.SetStyle(w.handle, style); err != nil {
			return err
		}
		if err := w.host.SetPosition(w.handle, bounds); err != nil {
			return err
		}
	case event.Minimized:
		w.host.ShowWindow(w.handle, ShowMinimize)
	default:
		return errors.Errorf("unknown window mode %d", uint8(m))
	}
	return nil
}

// PollEvents drains the OS message queue without blocking and returns the
// events it produced. The previous frame's events are discarded first.
func (w *Window) PollEvents() []event.Event {
	w.queue.Reset()
	for {
		m, ok := w.host.PeekMessage()
		if !ok {
			break
		}
		if m.ID == wm.Quit {
			w.push(event.Close{})
			break
		}
		w.host.DispatchMessage(m)
	}
	return w.queue.Events()
}

// Events returns the current frame's events, including those appended after
// PollEvents returned.
func (w *Window) Events() []event.Event {
	return w.queue.Events()
}

// Queue exposes the event buffer for watchers and filters.
func (w *Window) Queue() *event.Queue {
	return w.queue
}

// Close destroys the window. Calling it again, or after the OS destroyed the
// window, does nothing.
func (w *Window) Close() {
	if w.handle != 0 {
		if err := w.host.DestroyWindow(w.handle); err != nil {
			w.reporter.Error(errors.Wrap(err, "unable to destroy window"))
		}
		w.handle = 0
	}
	if w.class != nil {
		if err := w.class.Unregister(); err != nil {
			w.reporter.Error(err)
		}
	}
	w.initialized = false
}

func (w *Window) push(ev event.Event) {
	if _, err := w.queue.Add(ev); err != nil {
		w.reporter.Error(err)
	}
}

func (w *Window) Handle() Handle {
	return w.handle
}

// NativeHandle is the handle as passed to graphics APIs.
func (w *Window) NativeHandle() uintptr {
	return uintptr(w.handle)
}

func (w *Window) Width() int {
	return w.width
}

func (w *Window) Height() int {
	return w.height
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) Mode() event.WindowMode {
	return w.mode
}

// PreviousMode is the mode the window left when it was last minimized.
func (w *Window) PreviousMode() event.WindowMode {
	return w.previousMode
}

func (w *Window) Initialized() bool {
	return w.initialized
}
