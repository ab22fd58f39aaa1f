package video

import (
	"testing"

	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wm"
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/ws"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T, mode event.WindowMode) (*Window, *fakeHost, *fakeReporter) {
	t.Helper()
	host := newFakeHost()
	reporter := &fakeReporter{}
	w := NewWindow(host, reporter)
	require.NoError(t, w.Initialize("ByteEngine", mode, 800, 600, nil))
	w.PollEvents()
	host.calls = nil
	return w, host, reporter
}

func countModeChanged(events []event.Event) int {
	n := 0
	for _, ev := range events {
		if ev.Kind() == event.KindModeChanged {
			n++
		}
	}
	return n
}

func TestInitializeWindowed(t *testing.T) {
	host := newFakeHost()
	reporter := &fakeReporter{}
	w := NewWindow(host, reporter)

	require.NoError(t, w.Initialize("ByteEngine", event.Windowed, 800, 600, nil))

	assert.True(t, w.Initialized())
	assert.Equal(t, Handle(0x100), w.Handle())
	assert.Equal(t, event.Windowed, w.Mode())
	assert.Equal(t, ws.OverlappedWindow, host.style)
	assert.Equal(t, []string{"RegisterClass", "CreateWindow", "ShowWindow(maximize)", "RegisterRawInput", "ShowWindow(restore)"}, host.calls)
	assert.Equal(t, []uint32{wm.GetMinMaxInfo}, host.unattached)
	assert.Empty(t, reporter.fatals)

	rs, ok := event.Last[event.Resize](w.Events())
	require.True(t, ok)
	assert.Equal(t, event.Resize{Width: 800, Height: 600}, rs)
	assert.Contains(t, w.Events(), event.Event(event.ModeChanged{Mode: event.Windowed}))
}

func TestInitializeMaximizedKeepsShownFrame(t *testing.T) {
	host := newFakeHost()
	w := NewWindow(host, &fakeReporter{})

	require.NoError(t, w.Initialize("ByteEngine", event.Maximized, 800, 600, nil))
	assert.Equal(t, event.Maximized, w.Mode())
	assert.Equal(t, []string{"RegisterClass", "CreateWindow", "ShowWindow(maximize)", "RegisterRawInput"}, host.calls)
	assert.Zero(t, countModeChanged(w.Events()))
}

func TestWindowedStartMaximizesAndRestores(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)

	w.SetWindowMode(event.Maximized)
	assert.Equal(t, event.Maximized, w.Mode())
	assert.Equal(t, host.monitor, host.rect)

	w.PollEvents()
	w.SetWindowMode(event.Windowed)
	assert.Equal(t, event.Windowed, w.Mode())
	assert.Equal(t, []string{"ShowWindow(maximize)", "ShowWindow(restore)"}, host.calls)
	assert.Equal(t, 1, countModeChanged(w.Events()))
}

func TestInitializeFullscreenUsesScreenSize(t *testing.T) {
	host := newFakeHost()
	host.screenW, host.screenH = 2560, 1440
	w := NewWindow(host, &fakeReporter{})

	require.NoError(t, w.Initialize("ByteEngine", event.ExclusiveFullscreen, 800, 600, nil))
	assert.Equal(t, ws.Popup|ws.Visible, host.style)
	assert.Equal(t, event.ExclusiveFullscreen, w.Mode())
}

func TestInitializeWithoutCreateParam(t *testing.T) {
	host := newFakeHost()
	host.skipCreateParam = true
	w := NewWindow(host, &fakeReporter{})

	require.NoError(t, w.Initialize("ByteEngine", event.Windowed, 800, 600, nil))
	attached, err := w.class.Lookup(0x100)
	require.NoError(t, err)
	assert.Same(t, w, attached)
}

func TestInitializeFailures(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(h *fakeHost)
		fatal   string
	}{
		{"class registration", func(h *fakeHost) { h.registerErr = errors.New("class exists") }, "Failed to create the application window."},
		{"window creation", func(h *fakeHost) { h.createErr = errors.New("no desktop") }, "Failed to create the application window."},
		{"raw input", func(h *fakeHost) { h.rawErr = errors.New("denied") }, "Failed to initialize input devices."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newFakeHost()
			tt.prepare(host)
			reporter := &fakeReporter{}
			w := NewWindow(host, reporter)

			assert.Error(t, w.Initialize("ByteEngine", event.Windowed, 800, 600, nil))
			assert.False(t, w.Initialized())
			assert.Equal(t, []string{tt.fatal}, reporter.fatals)
		})
	}
}

func TestSetWindowModeSameModeIsNoop(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)

	w.SetWindowMode(event.Windowed)

	assert.Empty(t, host.calls)
	assert.Empty(t, w.Events())
}

func TestBorderlessFromWindowed(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)

	w.SetWindowMode(event.BorderlessFullscreen)

	assert.Equal(t, event.BorderlessFullscreen, w.Mode())
	assert.Equal(t, 1, countModeChanged(w.Events()))
	mc, ok := event.Last[event.ModeChanged](w.Events())
	require.True(t, ok)
	assert.Equal(t, event.BorderlessFullscreen, mc.Mode)
	assert.Equal(t, host.monitor, host.rect)
	assert.NotZero(t, host.style&ws.Popup)
	assert.Zero(t, host.style&ws.Caption)
	assert.Equal(t, []string{"MonitorRect", "Style", "SetStyle", "SetPosition"}, host.calls)
}

func TestBorderlessFallsBackToScreen(t *testing.T) {
	w, host, reporter := newTestWindow(t, event.Windowed)
	host.monitorErr = errors.New("no monitor")
	host.screenW, host.screenH = 1280, 720

	w.SetWindowMode(event.ExclusiveFullscreen)

	assert.Equal(t, Rect{Width: 1280, Height: 720}, host.rect)
	assert.Len(t, reporter.errs, 1)
	assert.Equal(t, event.ExclusiveFullscreen, w.Mode())
}

func TestFullscreenToWindowedRestoresFrame(t *testing.T) {
	w, host, _ := newTestWindow(t, event.BorderlessFullscreen)

	w.SetWindowMode(event.Maximized)

	assert.Equal(t, event.Maximized, w.Mode())
	assert.Zero(t, host.style&ws.Popup)
	assert.Equal(t, ws.OverlappedWindow, host.style&ws.OverlappedWindow)
	assert.Equal(t, []string{"Style", "SetStyle", "ShowWindow(maximize)"}, host.calls)
}

func TestExclusiveAndBorderlessSwapWithoutOSCalls(t *testing.T) {
	w, host, _ := newTestWindow(t, event.BorderlessFullscreen)

	w.SetWindowMode(event.ExclusiveFullscreen)

	assert.Empty(t, host.calls)
	assert.Equal(t, []event.Event{event.ModeChanged{Mode: event.ExclusiveFullscreen}}, w.Events())
}

func TestModeSequence(t *testing.T) {
	w, _, _ := newTestWindow(t, event.Windowed)
	sequence := []event.WindowMode{
		event.Maximized, event.Maximized, event.BorderlessFullscreen, event.ExclusiveFullscreen,
		event.Minimized, event.ExclusiveFullscreen, event.Windowed, event.Minimized, event.Windowed,
	}
	prev := w.Mode()
	for _, m := range sequence {
		w.PollEvents()
		w.SetWindowMode(m)
		assert.Equal(t, m, w.Mode())
		want := 0
		if m != prev {
			want = 1
		}
		assert.Equal(t, want, countModeChanged(w.Events()), "%s -> %s", prev, m)
		prev = m
	}
}

func TestFocusLossInExclusiveMinimizesAndRestores(t *testing.T) {
	w, host, _ := newTestWindow(t, event.ExclusiveFullscreen)

	host.post(wm.Activate, wm.ActivateInactive, 0)
	events := w.PollEvents()

	assert.Equal(t, event.Minimized, w.Mode())
	assert.Equal(t, event.ExclusiveFullscreen, w.PreviousMode())
	assert.Equal(t, event.LostFocus{}, events[0])
	assert.Contains(t, events, event.Event(event.ModeChanged{Mode: event.Minimized}))

	host.post(wm.Activate, wm.ActivateActive, 0)
	events = w.PollEvents()

	assert.Equal(t, event.ExclusiveFullscreen, w.Mode())
	assert.Equal(t, event.GainedFocus{}, events[0])
	assert.Contains(t, events, event.Event(event.ModeChanged{Mode: event.ExclusiveFullscreen}))
}

func TestMinimizeFromExclusiveRemembersMode(t *testing.T) {
	w, host, _ := newTestWindow(t, event.ExclusiveFullscreen)

	// Minimizing the active window deactivates it while the transition runs.
	w.SetWindowMode(event.Minimized)

	assert.Equal(t, event.Minimized, w.Mode())
	assert.Equal(t, event.ExclusiveFullscreen, w.PreviousMode())
	assert.Equal(t, 1, countModeChanged(w.Events()))
	assert.Contains(t, w.Events(), event.Event(event.LostFocus{}))
	assert.False(t, host.active)

	host.post(wm.Activate, wm.ActivateActive, 0)
	events := w.PollEvents()

	assert.Equal(t, event.ExclusiveFullscreen, w.Mode())
	assert.Equal(t, 1, countModeChanged(events))
	mc, ok := event.Last[event.ModeChanged](events)
	require.True(t, ok)
	assert.Equal(t, event.ExclusiveFullscreen, mc.Mode)
}

func TestRestoreFromMinimizedReportsOneChange(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)
	w.SetWindowMode(event.Minimized)
	w.PollEvents()

	// Restoring reactivates the window while the transition runs.
	w.SetWindowMode(event.Windowed)

	assert.Equal(t, event.Windowed, w.Mode())
	assert.True(t, host.active)
	assert.Equal(t, 1, countModeChanged(w.Events()))
	assert.Contains(t, w.Events(), event.Event(event.GainedFocus{}))
}

func TestFocusLossOutsideExclusiveKeepsMode(t *testing.T) {
	w, host, _ := newTestWindow(t, event.BorderlessFullscreen)

	host.post(wm.Activate, wm.ActivateInactive, 0)
	events := w.PollEvents()

	assert.Equal(t, []event.Event{event.LostFocus{}}, events)
	assert.Equal(t, event.BorderlessFullscreen, w.Mode())
}

func TestSizeMessagesTrackMode(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)

	host.post(wm.Size, wm.SizeMinimized, 0)
	w.PollEvents()
	assert.Equal(t, event.Minimized, w.Mode())
	assert.Equal(t, event.Windowed, w.PreviousMode())

	host.post(wm.Size, wm.SizeRestored, sizeParam(1024, 768))
	events := w.PollEvents()
	assert.Equal(t, event.Windowed, w.Mode())
	assert.Equal(t, []event.Event{event.Resize{Width: 1024, Height: 768}}, events)
	assert.Equal(t, 1024, w.Width())
	assert.Equal(t, 768, w.Height())

	host.post(wm.Size, wm.SizeMaximized, sizeParam(1920, 1080))
	w.PollEvents()
	assert.Equal(t, event.Maximized, w.Mode())

	host.post(wm.Size, wm.SizeRestored, sizeParam(800, 600))
	w.PollEvents()
	assert.Equal(t, event.Windowed, w.Mode())
}

func TestMinimizedFullscreenWaitsForActivation(t *testing.T) {
	w, host, _ := newTestWindow(t, event.BorderlessFullscreen)

	host.post(wm.Size, wm.SizeMinimized, 0)
	host.post(wm.Size, wm.SizeRestored, sizeParam(1920, 1080))
	w.PollEvents()
	assert.Equal(t, event.Minimized, w.Mode())

	host.post(wm.Activate, wm.ActivateActive, 0)
	w.PollEvents()
	assert.Equal(t, event.BorderlessFullscreen, w.Mode())
}

func TestPollEventsEmpty(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)
	mode, width, height := w.Mode(), w.Width(), w.Height()

	events := w.PollEvents()

	assert.Empty(t, events)
	assert.Empty(t, host.calls)
	assert.Equal(t, mode, w.Mode())
	assert.Equal(t, width, w.Width())
	assert.Equal(t, height, w.Height())
}

func TestPollEventsClearsPreviousFrame(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)

	host.post(wm.Close, 0, 0)
	assert.Equal(t, []event.Event{event.Close{}}, w.PollEvents())
	assert.Empty(t, w.PollEvents())
}

func TestCloseAndQuit(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)

	w.Close()
	assert.Equal(t, Handle(0), w.Handle())
	assert.Contains(t, host.calls, "PostQuitMessage")

	events := w.PollEvents()
	assert.Equal(t, []event.Event{event.Close{}}, events)

	host.calls = nil
	w.Close()
	assert.NotContains(t, host.calls, "DestroyWindow")
}

func TestDisplayChangeInvalidates(t *testing.T) {
	w, host, _ := newTestWindow(t, event.Windowed)

	host.post(wm.DisplayChange, 32, sizeParam(2560, 1440))
	assert.Empty(t, w.PollEvents())
	assert.Equal(t, []string{"Invalidate"}, host.calls)
}

func TestSetWindowModeWithoutWindow(t *testing.T) {
	w := NewWindow(newFakeHost(), &fakeReporter{})
	w.SetWindowMode(event.Maximized)
	assert.Equal(t, event.Windowed, w.Mode())
	assert.Empty(t, w.Events())
}
