// Package render owns the GPU device, swap chain and render targets of the
// engine window. It drives creation with retries, device-loss recovery and
// exclusive fullscreen negotiation over the Driver interfaces.
package render

import (
	"time"

	"github.com/Stavrolet/ByteEngineD3D11/debug"
	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/pkg/errors"
)

const (
	startFailedMessage      = "Failed to start the graphics system.\nCheck if your GPU supports DirectX 11.1 or if your GPU driver is working properly."
	driverFailedMessage     = "Internal driver error. Try restarting the application or restarting the computer."
	fullscreenFailedMessage = "Application failed to enter fullscreen mode. Try again later."
)

type State uint8

const (
	Uninitialized State = iota
	Initializing
	Ready
	DeviceLost
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	Initializing:  "initializing",
	Ready:         "ready",
	DeviceLost:    "device lost",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

type Config struct {
	// Attempts bounds the creation passes of Initialize.
	Attempts   int
	RetryDelay time.Duration
	// FullscreenRetries bounds the tries of a fullscreen state change that
	// reports a mode change in progress.
	FullscreenRetries    int
	FullscreenRetryDelay time.Duration
	Debug                bool
	DisplayMode          DisplayMode
	ClearColor           [4]float32
}

func DefaultConfig() Config {
	return Config{
		Attempts:             5,
		RetryDelay:           80 * time.Millisecond,
		FullscreenRetries:    5,
		FullscreenRetryDelay: 70 * time.Millisecond,
		DisplayMode: DisplayMode{
			Width:              1920,
			Height:             1080,
			RefreshNumerator:   120,
			RefreshDenominator: 1,
		},
		ClearColor: [4]float32{0, 0.6, 0.1, 1},
	}
}

type Option func(c *Context)

func WithConfig(cfg Config) Option {
	return func(c *Context) {
		c.cfg = cfg
	}
}

func WithDebug(on bool) Option {
	return func(c *Context) {
		c.cfg.Debug = on
	}
}

// WithSleep replaces time.Sleep for the retry back-offs.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Context) {
		c.sleep = sleep
	}
}

// Context is the rendering context of one target window. It is not safe for
// concurrent use; the application loop is its only caller.
type Context struct {
	driver   Driver
	reporter debug.Reporter
	cfg      Config
	sleep    func(time.Duration)

	target    Target
	device    Device
	swapChain SwapChain
	views     Views
	state     State
}

func New(driver Driver, reporter debug.Reporter, opts ...Option) *Context {
	c := &Context{
		driver:   driver,
		reporter: reporter,
		cfg:      DefaultConfig(),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.Attempts < 1 {
		c.cfg.Attempts = 1
	}
	if c.cfg.FullscreenRetries < 1 {
		c.cfg.FullscreenRetries = 1
	}
	return c
}

// Initialize creates the device, swap chain and views for target, retrying
// up to Config.Attempts times. Running out of attempts is fatal.
func (c *Context) Initialize(target Target) error {
	c.target = target
	c.state = Initializing

	var err error
	for attempt := 1; attempt <= c.cfg.Attempts; attempt++ {
		var message string
		message, err = c.attempt()
		if err == nil {
			c.state = Ready
			w, h, _ := c.ViewSize()
			debug.Logger().Info("rendering context ready", "attempt", attempt, "width", w, "height", h)
			return nil
		}
		c.release()
		if message != "" {
			c.state = Uninitialized
			c.reporter.Fatal(message, err)
			return err
		}
		debug.Logger().Debug("rendering context creation failed", "attempt", attempt, "error", err)
		if attempt < c.cfg.Attempts {
			c.sleep(c.cfg.RetryDelay)
		}
	}

	c.state = Uninitialized
	err = errors.Wrapf(err, "rendering context not created after %d attempts", c.cfg.Attempts)
	c.reporter.Fatal(startFailedMessage, err)
	return err
}

// attempt runs one creation pass. A failure that comes with a message is
// not retried.
func (c *Context) attempt() (string, error) {
	dev, err := c.driver.CreateDevice(c.cfg.Debug)
	if err != nil {
		return startFailedMessage, errors.Wrap(err, "unable to create device")
	}
	c.device = dev

	if c.cfg.Debug {
		if err := dev.EnableDebugLayer(); err != nil {
			c.reporter.Error(errors.Wrap(err, "unable to enable debug layer"))
		}
	}

	sc, err := dev.CreateSwapChain(c.target.NativeHandle(), SwapChainConfig{Mode: c.cfg.DisplayMode, BufferCount: 2})
	if err != nil {
		return startFailedMessage, errors.Wrap(err, "unable to create swap chain")
	}
	c.swapChain = sc

	if c.target.Mode() == event.ExclusiveFullscreen {
		if err := c.setFullscreen(true); err != nil {
			return c.creationVerdict(err)
		}
		if err := sc.ResizeBuffers(); err != nil {
			if c.inspect(err) != recoverable {
				return c.creationVerdict(err)
			}
			c.reporter.Error(errors.Wrap(err, "unable to resize swap chain buffers"))
		}
	}

	if err := c.createViews(); err != nil {
		return c.creationVerdict(err)
	}
	return "", nil
}

func (c *Context) creationVerdict(err error) (string, error) {
	if c.inspect(err) == driverFailure {
		return driverFailedMessage, err
	}
	return "", err
}

func (c *Context) createViews() error {
	w, h := c.target.Size()
	v, err := c.device.CreateViews(c.swapChain, w, h)
	if err != nil {
		return errors.Wrap(err, "unable to create render target views")
	}
	c.views = v
	return nil
}

type verdict uint8

const (
	recoverable verdict = iota
	lost
	driverFailure
)

// inspect classifies err. Only removed and reset statuses consult the
// device's removal reason.
func (c *Context) inspect(err error) verdict {
	code, ok := Code(err)
	if !ok || !code.DeviceLost() || c.device == nil {
		return recoverable
	}
	reason, _ := Code(c.device.RemovedReason())
	switch {
	case reason == ErrDriverInternal:
		return driverFailure
	case reason.DeviceLost():
		return lost
	}
	return recoverable
}

// handle applies the device-loss protocol to a failed call. It reports
// whether the context was torn down, in which case the caller must stop.
func (c *Context) handle(op string, err error) bool {
	err = errors.Wrap(err, op)
	switch c.inspect(err) {
	case driverFailure:
		c.reporter.Fatal(driverFailedMessage, err)
		c.Cleanup()
		return true
	case lost:
		c.state = DeviceLost
		debug.Logger().Warn("device lost, recreating rendering context", "error", err)
		c.reinitialize()
		return true
	}
	c.reporter.Error(err)
	return false
}

func (c *Context) reinitialize() {
	target := c.target
	c.Cleanup()
	c.Initialize(target)
}

// setFullscreen changes the swap chain's fullscreen state. Only a device
// loss is returned; every other failure is handled here.
func (c *Context) setFullscreen(on bool) error {
	for try := 1; ; try++ {
		err := c.swapChain.SetFullscreen(on)
		if err == nil {
			debug.Logger().Debug("swap chain fullscreen state changed", "fullscreen", on)
			return nil
		}

		code, _ := Code(err)
		switch {
		case code == StatusModeChangeInProgress && try < c.cfg.FullscreenRetries:
			c.sleep(c.cfg.FullscreenRetryDelay)
			continue
		case code == StatusModeChangeInProgress:
			debug.Logger().Debug("swap chain fullscreen state change deferred", "fullscreen", on, "tries", try)
			return nil
		case code == ErrNotCurrentlyAvailable:
			return nil
		case code.DeviceLost():
			return err
		}

		c.reporter.Error(errors.Wrapf(err, "unable to set swap chain fullscreen state to %t", on))
		c.reporter.Alert(fullscreenFailedMessage)
		c.target.SetWindowMode(event.Maximized)
		return nil
	}
}

// OnResize resizes the back buffers and recreates the views. It does
// nothing without a resize event or while the target is minimized.
func (c *Context) OnResize(ev *event.Resize) {
	if ev == nil || c.state != Ready || c.target.Mode() == event.Minimized {
		return
	}
	c.device.UnbindTargets()
	c.resizeSwapChain()
}

// OnModeChanged brings the swap chain's exclusive fullscreen state in line
// with the target's mode, then resizes as OnResize does.
func (c *Context) OnModeChanged(ev *event.ModeChanged) {
	if ev == nil || c.state != Ready {
		return
	}
	debug.Logger().Debug("window mode changed", "mode", ev.Mode)

	want := c.target.Mode() == event.ExclusiveFullscreen
	on, err := c.swapChain.Fullscreen()
	if err != nil {
		if c.handle("unable to query swap chain fullscreen state", err) {
			return
		}
	} else if on != want {
		if err := c.setFullscreen(want); err != nil {
			if c.handle("unable to change swap chain fullscreen state", err) {
				return
			}
		}
	}

	if c.target.Mode() == event.Minimized {
		return
	}
	c.device.UnbindTargets()
	c.resizeSwapChain()
}

func (c *Context) resizeSwapChain() {
	c.releaseViews()
	if err := c.swapChain.ResizeBuffers(); err != nil {
		if c.handle("unable to resize swap chain buffers", err) {
			return
		}
	}
	if err := c.createViews(); err != nil {
		if c.inspect(err) == driverFailure {
			c.handle("unable to recreate views", err)
			return
		}
		c.reporter.Error(err)
		c.reinitialize()
	}
}

// OnUpdate clears the targets and presents with vsync. It does nothing
// while the target is minimized.
func (c *Context) OnUpdate() {
	if c.state != Ready || c.target.Mode() == event.Minimized {
		return
	}
	if c.views == nil {
		if err := c.createViews(); err != nil {
			c.handle("unable to create views", err)
			return
		}
	}

	c.device.Clear(c.views, c.cfg.ClearColor)
	err := c.swapChain.Present(1)
	if err == nil {
		return
	}
	if code, ok := Code(err); ok && code == StatusOccluded {
		return
	}
	c.handle("unable to present", err)
}

// ReleaseFullscreen leaves exclusive fullscreen before the window is
// destroyed.
func (c *Context) ReleaseFullscreen() {
	if c.swapChain == nil {
		return
	}
	on, err := c.swapChain.Fullscreen()
	if err != nil {
		c.reporter.Error(errors.Wrap(err, "unable to query swap chain fullscreen state"))
		return
	}
	if !on {
		return
	}
	if err := c.swapChain.SetFullscreen(false); err != nil {
		c.reporter.Error(errors.Wrap(err, "unable to leave fullscreen"))
	}
}

// Cleanup releases every GPU object. The context can be initialized again.
func (c *Context) Cleanup() {
	c.release()
	c.state = Uninitialized
}

func (c *Context) release() {
	if c.device != nil && c.views != nil {
		c.device.UnbindTargets()
	}
	c.releaseViews()
	if c.swapChain != nil {
		c.swapChain.Release()
		c.swapChain = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
}

func (c *Context) releaseViews() {
	if c.views != nil {
		c.views.Release()
		c.views = nil
	}
}

func (c *Context) State() State {
	return c.state
}

// ViewSize is the size of the current views; ok is false without views.
func (c *Context) ViewSize() (width, height int, ok bool) {
	if c.views == nil {
		return 0, 0, false
	}
	width, height = c.views.Size()
	return width, height, true
}

func (c *Context) Config() Config {
	return c.cfg
}
