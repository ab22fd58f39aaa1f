package event

// Kind identifies the variant of an Event.
type Kind uint8

// Event kinds, one per variant.
const (
	KindResize Kind = iota
	KindModeChanged
	KindLostFocus
	KindGainedFocus
	KindClose
	KindKey
	KindMouseMove
	KindMouseWheel

	kindCount
)

var kindNames = [kindCount]string{
	KindResize:      "Resize",
	KindModeChanged: "ModeChanged",
	KindLostFocus:   "LostFocus",
	KindGainedFocus: "GainedFocus",
	KindClose:       "Close",
	KindKey:         "Key",
	KindMouseMove:   "MouseMove",
	KindMouseWheel:  "MouseWheel",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Event is a window or input notification produced during a frame's message
// pump. The set of variants is closed: only this package can add one.
type Event interface {
	Kind() Kind
	accept(v Visitor)
}

// Visitor has one method per Event variant. Adding a variant adds a method,
// so every implementation fails to compile until it handles it.
type Visitor interface {
	Resize(ev Resize)
	ModeChanged(ev ModeChanged)
	LostFocus(ev LostFocus)
	GainedFocus(ev GainedFocus)
	Close(ev Close)
	Key(ev Key)
	MouseMove(ev MouseMove)
	MouseWheel(ev MouseWheel)
}

// Visit calls the method of v matching the variant of ev.
func Visit(ev Event, v Visitor) {
	if ev == nil {
		return
	}
	ev.accept(v)
}

// Last returns the last event of type T in events.
func Last[T Event](events []Event) (T, bool) {
	var found T
	ok := false
	for _, ev := range events {
		if typed, is := ev.(T); is {
			found, ok = typed, true
		}
	}
	return found, ok
}

// Contains reports whether an event of kind k is in events.
func Contains(events []Event, k Kind) bool {
	for _, ev := range events {
		if ev.Kind() == k {
			return true
		}
	}
	return false
}
