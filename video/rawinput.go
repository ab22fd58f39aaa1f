package video

import (
	"github.com/Stavrolet/ByteEngineD3D11/debug"
	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/flagset"
	"github.com/Stavrolet/ByteEngineD3D11/w32"
)

var mouseButtons = [...]struct {
	down, up uint16
	code     event.KeyCode
}{
	{w32.RIMouseLeftButtonDown, w32.RIMouseLeftButtonUp, event.MouseLeft},
	{w32.RIMouseRightButtonDown, w32.RIMouseRightButtonUp, event.MouseRight},
	{w32.RIMouseMiddleButtonDown, w32.RIMouseMiddleButtonUp, event.MouseMiddle},
	{w32.RIMouseButton4Down, w32.RIMouseButton4Up, event.MouseX1},
	{w32.RIMouseButton5Down, w32.RIMouseButton5Up, event.MouseX2},
}

// decodeRawInput appends the events described by ri to out.
func decodeRawInput(ri w32.RawInput, out []event.Event) []event.Event {
	switch ri.Header.Type {
	case w32.RIMTypeKeyboard:
		return decodeKeyboard(ri.Keyboard, out)
	case w32.RIMTypeMouse:
		return decodeMouse(ri.Mouse, out)
	}
	return out
}

func decodeKeyboard(kb w32.RawKeyboard, out []event.Event) []event.Event {
	if kb.MakeCode == w32.KeyboardOverrunMakeCode {
		return out
	}
	// Pause arrives as an E1 sequence split over two records and never
	// reports a break, so it is keyed on the virtual key instead.
	if kb.VKey == w32.VKPause {
		return append(out, event.Key{Code: event.KeyPause, Pressed: true})
	}
	if kb.MakeCode == 0 {
		return out
	}

	flags := flagset.New[uint16](3, kb.Flags)
	var prefix uint8
	switch {
	case flags.Has(w32.RIKeyE0):
		prefix = 0xe0
	case flags.Has(w32.RIKeyE1):
		prefix = 0xe1
	}
	key := event.Key{
		Code:    event.ScanCode(kb.MakeCode, prefix),
		Pressed: !flags.Has(w32.RIKeyBreak),
	}
	debug.Logger().Debug("raw key", "code", key.Code, "pressed", key.Pressed)
	return append(out, key)
}

func decodeMouse(m w32.RawMouse, out []event.Event) []event.Event {
	flags := flagset.Of(m.Flags)
	if !flags.Has(w32.MouseMoveAbsolute) && (m.LastX != 0 || m.LastY != 0) {
		out = append(out, event.MouseMove{DX: float32(m.LastX), DY: float32(m.LastY)})
	}

	buttons := flagset.New[uint16](12, m.ButtonFlags)
	if buttons.Has(w32.RIMouseWheel) {
		delta := float32(int16(m.ButtonData)) / w32.WheelDelta
		out = append(out, event.MouseWheel{Vertical: delta})
		if delta > 0 {
			out = append(out, event.Key{Code: event.MouseWheelUp, Pressed: true})
		} else if delta < 0 {
			out = append(out, event.Key{Code: event.MouseWheelDown, Pressed: true})
		}
	}
	if buttons.Has(w32.RIMouseHWheel) {
		delta := float32(int16(m.ButtonData)) / w32.WheelDelta
		out = append(out, event.MouseWheel{Horizontal: delta})
		if delta > 0 {
			out = append(out, event.Key{Code: event.MouseWheelRight, Pressed: true})
		} else if delta < 0 {
			out = append(out, event.Key{Code: event.MouseWheelLeft, Pressed: true})
		}
	}

	for _, b := range mouseButtons {
		if buttons.Has(b.down) {
			out = append(out, event.Key{Code: b.code, Pressed: true})
		}
		if buttons.Has(b.up) {
			out = append(out, event.Key{Code: b.code, Pressed: false})
		}
	}
	return out
}
