package event

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// KeyCode is a keyboard scan code in the raw-input layout: the low byte is
// the make code, the high byte is the 0xE0 or 0xE1 prefix of extended keys.
// Mouse buttons and wheel directions use pseudo codes in the 0xF0xx range.
type KeyCode uint16

const (
	prefixE0 KeyCode = 0xe000
	prefixE1 KeyCode = 0xe100
)

// Scan code set 1.
const (
	KeyUnknown      KeyCode = 0x00
	KeyEscape       KeyCode = 0x01
	Key1            KeyCode = 0x02
	Key2            KeyCode = 0x03
	Key3            KeyCode = 0x04
	Key4            KeyCode = 0x05
	Key5            KeyCode = 0x06
	Key6            KeyCode = 0x07
	Key7            KeyCode = 0x08
	Key8            KeyCode = 0x09
	Key9            KeyCode = 0x0a
	Key0            KeyCode = 0x0b
	KeyMinus        KeyCode = 0x0c
	KeyEquals       KeyCode = 0x0d
	KeyBackspace    KeyCode = 0x0e
	KeyTab          KeyCode = 0x0f
	KeyQ            KeyCode = 0x10
	KeyW            KeyCode = 0x11
	KeyE            KeyCode = 0x12
	KeyR            KeyCode = 0x13
	KeyT            KeyCode = 0x14
	KeyY            KeyCode = 0x15
	KeyU            KeyCode = 0x16
	KeyI            KeyCode = 0x17
	KeyO            KeyCode = 0x18
	KeyP            KeyCode = 0x19
	KeyLeftBracket  KeyCode = 0x1a
	KeyRightBracket KeyCode = 0x1b
	KeyEnter        KeyCode = 0x1c
	KeyLeftCtrl     KeyCode = 0x1d
	KeyA            KeyCode = 0x1e
	KeyS            KeyCode = 0x1f
	KeyD            KeyCode = 0x20
	KeyF            KeyCode = 0x21
	KeyG            KeyCode = 0x22
	KeyH            KeyCode = 0x23
	KeyJ            KeyCode = 0x24
	KeyK            KeyCode = 0x25
	KeyL            KeyCode = 0x26
	KeySemicolon    KeyCode = 0x27
	KeyApostrophe   KeyCode = 0x28
	KeyGrave        KeyCode = 0x29
	KeyLeftShift    KeyCode = 0x2a
	KeyBackslash    KeyCode = 0x2b
	KeyZ            KeyCode = 0x2c
	KeyX            KeyCode = 0x2d
	KeyC            KeyCode = 0x2e
	KeyV            KeyCode = 0x2f
	KeyB            KeyCode = 0x30
	KeyN            KeyCode = 0x31
	KeyM            KeyCode = 0x32
	KeyComma        KeyCode = 0x33
	KeyPeriod       KeyCode = 0x34
	KeySlash        KeyCode = 0x35
	KeyRightShift   KeyCode = 0x36
	KeyKPMultiply   KeyCode = 0x37
	KeyLeftAlt      KeyCode = 0x38
	KeySpace        KeyCode = 0x39
	KeyCapsLock     KeyCode = 0x3a
	KeyF1           KeyCode = 0x3b
	KeyF2           KeyCode = 0x3c
	KeyF3           KeyCode = 0x3d
	KeyF4           KeyCode = 0x3e
	KeyF5           KeyCode = 0x3f
	KeyF6           KeyCode = 0x40
	KeyF7           KeyCode = 0x41
	KeyF8           KeyCode = 0x42
	KeyF9           KeyCode = 0x43
	KeyF10          KeyCode = 0x44
	KeyNumLock      KeyCode = 0x45
	KeyScrollLock   KeyCode = 0x46
	KeyKP7          KeyCode = 0x47
	KeyKP8          KeyCode = 0x48
	KeyKP9          KeyCode = 0x49
	KeyKPMinus      KeyCode = 0x4a
	KeyKP4          KeyCode = 0x4b
	KeyKP5          KeyCode = 0x4c
	KeyKP6          KeyCode = 0x4d
	KeyKPPlus       KeyCode = 0x4e
	KeyKP1          KeyCode = 0x4f
	KeyKP2          KeyCode = 0x50
	KeyKP3          KeyCode = 0x51
	KeyKP0          KeyCode = 0x52
	KeyKPPeriod     KeyCode = 0x53
	KeyNonUSSlash   KeyCode = 0x56
	KeyF11          KeyCode = 0x57
	KeyF12          KeyCode = 0x58
	KeyF13          KeyCode = 0x64
	KeyF14          KeyCode = 0x65
	KeyF15          KeyCode = 0x66
	KeyF16          KeyCode = 0x67
	KeyF17          KeyCode = 0x68
	KeyF18          KeyCode = 0x69
	KeyF19          KeyCode = 0x6a
)

// Extended keys.
const (
	KeyKPEnter     = prefixE0 | 0x1c
	KeyRightCtrl   = prefixE0 | 0x1d
	KeyKPDivide    = prefixE0 | 0x35
	KeyPrintScreen = prefixE0 | 0x37
	KeyRightAlt    = prefixE0 | 0x38
	KeyHome        = prefixE0 | 0x47
	KeyUp          = prefixE0 | 0x48
	KeyPageUp      = prefixE0 | 0x49
	KeyLeft        = prefixE0 | 0x4b
	KeyRight       = prefixE0 | 0x4d
	KeyEnd         = prefixE0 | 0x4f
	KeyDown        = prefixE0 | 0x50
	KeyPageDown    = prefixE0 | 0x51
	KeyInsert      = prefixE0 | 0x52
	KeyDelete      = prefixE0 | 0x53
	KeyLeftGUI     = prefixE0 | 0x5b
	KeyRightGUI    = prefixE0 | 0x5c
	KeyApplication = prefixE0 | 0x5d

	// KeyPause is reported by the pause virtual key rather than its
	// multi-byte make sequence, and only ever as a press.
	KeyPause = prefixE1 | 0x1d
)

// ScanCode builds the key code for a make code and its prefix byte
// (0, 0xE0 or 0xE1).
func ScanCode(makeCode uint16, prefix uint8) KeyCode {
	return KeyCode(uint16(prefix)<<8 | makeCode&0x7f)
}

func (k KeyCode) Extended() bool {
	return k&0xff00 == prefixE0 || k&0xff00 == prefixE1
}

func (k KeyCode) Mouse() bool {
	return k&0xff00 == mousePrefix
}

var baseKeyNames = [...]string{
	// 0, 1, 2, 3, 4, 5, 6, 7
	// 8, 9, A, B, C, D, E, F
	"", "Escape", "1", "2", "3", "4", "5", "6", // 0
	"7", "8", "9", "0", "Minus", "Equals", "Backspace", "Tab", // 0
	"Q", "W", "E", "R", "T", "Y", "U", "I", // 1
	"O", "P", "LeftBracket", "RightBracket", "Enter", "LeftCtrl", "A", "S", // 1
	"D", "F", "G", "H", "J", "K", "L", "Semicolon", // 2
	"Apostrophe", "Grave", "LeftShift", "Backslash", "Z", "X", "C", "V", // 2
	"B", "N", "M", "Comma", "Period", "Slash", "RightShift", "KPMultiply", // 3
	"LeftAlt", "Space", "CapsLock", "F1", "F2", "F3", "F4", "F5", // 3
	"F6", "F7", "F8", "F9", "F10", "NumLock", "ScrollLock", "KP7", // 4
	"KP8", "KP9", "KPMinus", "KP4", "KP5", "KP6", "KPPlus", "KP1", // 4
	"KP2", "KP3", "KP0", "KPPeriod", "", "", "NonUSSlash", "F11", // 5
	"F12", "", "", "", "", "", "", "", // 5
	"", "", "", "", "F13", "F14", "F15", "F16", // 6
	"F17", "F18", "F19", "", "", "", "", "", // 6
}

var extendedKeyNames = map[KeyCode]string{
	KeyKPEnter:     "KPEnter",
	KeyRightCtrl:   "RightCtrl",
	KeyKPDivide:    "KPDivide",
	KeyPrintScreen: "PrintScreen",
	KeyRightAlt:    "RightAlt",
	KeyHome:        "Home",
	KeyUp:          "Up",
	KeyPageUp:      "PageUp",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyEnd:         "End",
	KeyDown:        "Down",
	KeyPageDown:    "PageDown",
	KeyInsert:      "Insert",
	KeyDelete:      "Delete",
	KeyLeftGUI:     "LeftGUI",
	KeyRightGUI:    "RightGUI",
	KeyApplication: "Application",
	KeyPause:       "Pause",

	MouseLeft:       "MouseLeft",
	MouseRight:      "MouseRight",
	MouseMiddle:     "MouseMiddle",
	MouseX1:         "MouseX1",
	MouseX2:         "MouseX2",
	MouseWheelUp:    "MouseWheelUp",
	MouseWheelDown:  "MouseWheelDown",
	MouseWheelLeft:  "MouseWheelLeft",
	MouseWheelRight: "MouseWheelRight",
}

func (k KeyCode) String() string {
	if k < KeyCode(len(baseKeyNames)) && baseKeyNames[k] != "" {
		return baseKeyNames[k]
	}
	if name, ok := extendedKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%#04x)", uint16(k))
}

// ParseKeyCode maps a key name as printed by String back to its code.
// Names are case-insensitive.
func ParseKeyCode(name string) (KeyCode, error) {
	for i, n := range baseKeyNames {
		if n != "" && strings.EqualFold(n, name) {
			return KeyCode(i), nil
		}
	}
	for k, n := range extendedKeyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return KeyUnknown, errors.Errorf("unknown key %q", name)
}

// Key reports a key or mouse button transition.
type Key struct {
	Code    KeyCode
	Pressed bool
}

func (Key) Kind() Kind { return KindKey }

func (ev Key) accept(v Visitor) { v.Key(ev) }
