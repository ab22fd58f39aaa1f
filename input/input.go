// Package input keeps the per-frame keyboard and mouse state built from
// window events, and named actions bound to sets of keys.
package input

import (
	"sort"

	"github.com/Stavrolet/ByteEngineD3D11/event"
)

// pulses are keys that only ever report a press; they are released at the
// start of every frame.
var pulses = [...]event.KeyCode{
	event.KeyPause,
	event.MouseWheelUp,
	event.MouseWheelDown,
	event.MouseWheelLeft,
	event.MouseWheelRight,
}

type Input struct {
	actions map[string][]event.KeyCode
	keys    map[event.KeyCode]bool
	// Transitions seen this frame. Both are set for a key tapped within
	// one frame.
	pressed  map[event.KeyCode]bool
	released map[event.KeyCode]bool
	anyKey   bool

	mouseDX, mouseDY float32
	wheelH, wheelV   float32
}

func New() *Input {
	return &Input{
		actions:  make(map[string][]event.KeyCode),
		keys:     make(map[event.KeyCode]bool),
		pressed:  make(map[event.KeyCode]bool),
		released: make(map[event.KeyCode]bool),
	}
}

// BindAction makes name pressed whenever any of keys is. Binding an
// existing name replaces its keys.
func (in *Input) BindAction(name string, keys ...event.KeyCode) {
	in.actions[name] = append([]event.KeyCode(nil), keys...)
}

func (in *Input) UnbindAction(name string) {
	delete(in.actions, name)
}

// Actions returns the bound action names in order.
func (in *Input) Actions() []string {
	names := make([]string, 0, len(in.actions))
	for name := range in.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (in *Input) ActionKeys(name string) []event.KeyCode {
	return in.actions[name]
}

// Update starts a new frame: transitions are forgotten, pulse keys are
// released and the mouse deltas are cleared.
func (in *Input) Update() {
	clear(in.pressed)
	clear(in.released)
	for _, k := range pulses {
		if in.keys[k] {
			in.keys[k] = false
			in.released[k] = true
		}
	}
	in.anyKey = false
	in.mouseDX, in.mouseDY = 0, 0
	in.wheelH, in.wheelV = 0, 0
}

// Process folds one event into the current frame. Window events are
// ignored.
func (in *Input) Process(ev event.Event) {
	event.Visit(ev, processor{in})
}

type processor struct {
	in *Input
}

func (p processor) Key(ev event.Key) {
	in := p.in
	if ev.Pressed {
		if !in.keys[ev.Code] {
			in.pressed[ev.Code] = true
		}
		in.anyKey = true
	} else if in.keys[ev.Code] {
		in.released[ev.Code] = true
	}
	in.keys[ev.Code] = ev.Pressed
}

func (p processor) MouseMove(ev event.MouseMove) {
	p.in.mouseDX += ev.DX
	p.in.mouseDY += ev.DY
}

func (p processor) MouseWheel(ev event.MouseWheel) {
	p.in.wheelH += ev.Horizontal
	p.in.wheelV += ev.Vertical
}

func (processor) Resize(event.Resize)           {}
func (processor) ModeChanged(event.ModeChanged) {}
func (processor) LostFocus(event.LostFocus)     {}
func (processor) GainedFocus(event.GainedFocus) {}
func (processor) Close(event.Close)             {}

func (in *Input) IsKeyPressed(k event.KeyCode) bool {
	return in.keys[k]
}

// IsKeyJustPressed reports whether k went down this frame, even if it was
// released again before the frame ended.
func (in *Input) IsKeyJustPressed(k event.KeyCode) bool {
	return in.pressed[k]
}

func (in *Input) IsKeyJustReleased(k event.KeyCode) bool {
	return in.released[k]
}

// IsAnyKeyPressed reports whether a key went down this frame.
func (in *Input) IsAnyKeyPressed() bool {
	return in.anyKey
}

func (in *Input) IsActionPressed(name string) bool {
	return in.anyAction(name, in.IsKeyPressed)
}

func (in *Input) IsActionJustPressed(name string) bool {
	return in.anyAction(name, in.IsKeyJustPressed)
}

func (in *Input) IsActionJustReleased(name string) bool {
	return in.anyAction(name, in.IsKeyJustReleased)
}

func (in *Input) anyAction(name string, test func(event.KeyCode) bool) bool {
	for _, k := range in.actions[name] {
		if test(k) {
			return true
		}
	}
	return false
}

// MouseDelta is the relative mouse motion accumulated this frame.
func (in *Input) MouseDelta() (dx, dy float32) {
	return in.mouseDX, in.mouseDY
}

// WheelDelta is the wheel rotation accumulated this frame, in notches.
func (in *Input) WheelDelta() (horizontal, vertical float32) {
	return in.wheelH, in.wheelV
}
