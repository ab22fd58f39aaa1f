package event

const mousePrefix KeyCode = 0xf000

// Mouse pseudo key codes.
const (
	MouseLeft KeyCode = mousePrefix + iota + 1
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// MouseMove carries the relative motion of the pointing device.
type MouseMove struct {
	DX float32
	DY float32
}

// MouseWheel carries wheel rotation in notches, positive away from the user
// (vertical) or to the right (horizontal).
type MouseWheel struct {
	Horizontal float32
	Vertical   float32
}

func (MouseMove) Kind() Kind  { return KindMouseMove }
func (MouseWheel) Kind() Kind { return KindMouseWheel }

func (ev MouseMove) accept(v Visitor)  { v.MouseMove(ev) }
func (ev MouseWheel) accept(v Visitor) { v.MouseWheel(ev) }
