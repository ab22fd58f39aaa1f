package event

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// WindowMode is the presentation state of the application window.
type WindowMode uint8

const (
	Minimized WindowMode = iota
	Windowed
	Maximized
	BorderlessFullscreen
	ExclusiveFullscreen
)

var modeNames = map[WindowMode]string{
	Minimized:            "minimized",
	Windowed:             "windowed",
	Maximized:            "maximized",
	BorderlessFullscreen: "borderless",
	ExclusiveFullscreen:  "exclusive",
}

func (m WindowMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("WindowMode(%d)", uint8(m))
}

// IsFullscreen reports whether the mode covers the whole monitor.
func (m WindowMode) IsFullscreen() bool {
	return m == BorderlessFullscreen || m == ExclusiveFullscreen
}

// ParseWindowMode maps a mode name as printed by String back to the mode.
func ParseWindowMode(name string) (WindowMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return Windowed, errors.Errorf("unknown window mode %q", name)
}

// Resize reports the new client size of the window.
type Resize struct {
	Width  int
	Height int
}

// ModeChanged reports a committed window mode transition.
type ModeChanged struct {
	Mode WindowMode
}

type LostFocus struct{}

type GainedFocus struct{}

// Close is raised when the window is closed or the quit message is pumped.
type Close struct{}

func (Resize) Kind() Kind      { return KindResize }
func (ModeChanged) Kind() Kind { return KindModeChanged }
func (LostFocus) Kind() Kind   { return KindLostFocus }
func (GainedFocus) Kind() Kind { return KindGainedFocus }
func (Close) Kind() Kind       { return KindClose }

func (ev Resize) accept(v Visitor)      { v.Resize(ev) }
func (ev ModeChanged) accept(v Visitor) { v.ModeChanged(ev) }
func (ev LostFocus) accept(v Visitor)   { v.LostFocus(ev) }
func (ev GainedFocus) accept(v Visitor) { v.GainedFocus(ev) }
func (ev Close) accept(v Visitor)       { v.Close(ev) }
