package video

import (
	"github.com/Stavrolet/ByteEngineD3D11/debug"
	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wm"
	"github.com/pkg/errors"
)

// OnMessage translates a window message into events. It reports whether
// the message was handled; unhandled messages go to the default procedure.
func (w *Window) OnMessage(uMsg uint32, wParam, lParam uintptr) (bool, uintptr) {
	switch uMsg {
	case wm.Destroy:
		w.handle = 0
		w.push(event.Close{})
		w.host.PostQuitMessage(0)
		return true, 0

	case wm.Size:
		w.width = int(wm.LoWord(lParam))
		w.height = int(wm.HiWord(lParam))
		if w.initialized && !w.transitioning {
			w.trackSize(wParam)
		}
		w.push(event.Resize{Width: w.width, Height: w.height})
		return true, 0

	case wm.Activate:
		// Minimizing and restoring send activation changes themselves; the
		// transition that caused them commits the mode.
		if wm.LoWord(wParam) == wm.ActivateInactive {
			w.push(event.LostFocus{})
			if w.initialized && !w.transitioning && w.mode == event.ExclusiveFullscreen {
				w.SetWindowMode(event.Minimized)
			}
		} else {
			w.push(event.GainedFocus{})
			if w.initialized && !w.transitioning && w.mode == event.Minimized {
				w.SetWindowMode(w.previousMode)
			}
		}
		return true, 0

	case wm.Close:
		w.push(event.Close{})
		return true, 0

	case wm.DisplayChange:
		if err := w.host.Invalidate(w.handle); err != nil {
			w.reporter.Error(errors.Wrap(err, "unable to invalidate window after display change"))
		}
		return true, 0

	case wm.Input:
		w.readRawInput(lParam)
		// The default procedure releases the raw input buffer.
		return false, 0
	}
	return false, 0
}

// trackSize keeps the mode in step with minimize, maximize and restore
// operations the user performs through the window frame.
func (w *Window) trackSize(kind uintptr) {
	switch kind {
	case wm.SizeMinimized:
		if w.mode != event.Minimized {
			w.previousMode = w.mode
			w.mode = event.Minimized
		}
	case wm.SizeMaximized:
		if !w.mode.IsFullscreen() {
			w.mode = event.Maximized
		}
	case wm.SizeRestored:
		switch {
		case w.mode == event.Maximized:
			w.mode = event.Windowed
		case w.mode == event.Minimized && w.previousMode.IsFullscreen():
			// Activation restores the fullscreen mode and reports it.
		case w.mode == event.Minimized:
			w.mode = event.Windowed
		}
	}
}

func (w *Window) readRawInput(lParam uintptr) {
	ri, err := w.host.RawInput(lParam)
	if err != nil {
		debug.Logger().Debug("unable to read raw input", "error", err)
		return
	}
	for _, ev := range decodeRawInput(ri, nil) {
		w.push(ev)
	}
}
