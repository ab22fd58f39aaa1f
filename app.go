// Package byteengine runs the per-frame loop of a single window and its
// rendering context.
package byteengine

import (
	"runtime"
	"time"

	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/input"
	"github.com/Stavrolet/ByteEngineD3D11/ticker"
)

// FrameWindow is the window side of the loop. *video.Window implements it.
type FrameWindow interface {
	PollEvents() []event.Event
	Events() []event.Event
	Close()
}

// Renderer is the rendering side of the loop. *render.Context implements it.
type Renderer interface {
	OnResize(ev *event.Resize)
	OnModeChanged(ev *event.ModeChanged)
	OnUpdate()
	ReleaseFullscreen()
	Cleanup()
}

// Handler receives every event of a frame after the input state has seen it.
type Handler func(app *Application, ev event.Event)

// FrameFunc advances the application by one frame.
type FrameFunc func(app *Application, dt time.Duration)

type Option func(app *Application)

// WithClock replaces the frame clock.
func WithClock(c *ticker.Clock) Option {
	return func(app *Application) {
		app.clock = c
	}
}

func WithFrame(f FrameFunc) Option {
	return func(app *Application) {
		app.frame = f
	}
}

type Application struct {
	window   FrameWindow
	renderer Renderer
	input    *input.Input
	clock    *ticker.Clock
	handlers []Handler
	frame    FrameFunc

	quit bool
	code int
}

func New(window FrameWindow, renderer Renderer, in *input.Input, opts ...Option) *Application {
	if in == nil {
		in = input.New()
	}
	app := &Application{
		window:   window,
		renderer: renderer,
		input:    in,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.clock == nil {
		app.clock = ticker.New()
	}
	return app
}

// Handle registers h for every event. Handlers run in registration order.
func (app *Application) Handle(h Handler) {
	app.handlers = append(app.handlers, h)
}

func (app *Application) OnFrame(f FrameFunc) {
	app.frame = f
}

// Quit asks the loop to stop at the next frame boundary and return code.
func (app *Application) Quit(code int) {
	app.quit = true
	app.code = code
}

func (app *Application) Input() *input.Input {
	return app.input
}

func (app *Application) Clock() *ticker.Clock {
	return app.clock
}

// Run drives frames until a Close event arrives or Quit is called, then
// tears the window and the renderer down. It returns the last Quit code.
func (app *Application) Run() int {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer app.shutdown()

	app.clock.Reset()
	for !app.quit {
		if !app.step() {
			break
		}
	}
	return app.code
}

// step runs one frame and reports whether the loop should continue.
func (app *Application) step() bool {
	dt := app.clock.Tick()

	events := app.window.PollEvents()
	if event.Contains(events, event.KindClose) {
		return false
	}

	app.input.Update()
	for _, ev := range events {
		app.input.Process(ev)
		for _, h := range app.handlers {
			h(app, ev)
		}
	}

	// Handlers may have changed the window mode, so the buffer is read
	// again.
	if ev, ok := event.Last[event.ModeChanged](app.window.Events()); ok {
		app.renderer.OnModeChanged(&ev)
	}
	if ev, ok := event.Last[event.Resize](app.window.Events()); ok {
		app.renderer.OnResize(&ev)
	}

	if app.frame != nil {
		app.frame(app, dt)
	}
	app.renderer.OnUpdate()
	return true
}

func (app *Application) shutdown() {
	app.renderer.ReleaseFullscreen()
	app.window.Close()
	app.renderer.Cleanup()
}
