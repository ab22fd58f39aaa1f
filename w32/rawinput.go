package w32

import (
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"
)

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-rawinputheader
const (
	RIMTypeMouse    = 0
	RIMTypeKeyboard = 1
	RIMTypeHID      = 2
)

// RAWKEYBOARD.Flags
const (
	RIKeyMake  uint16 = 0
	RIKeyBreak uint16 = 1
	RIKeyE0    uint16 = 2
	RIKeyE1    uint16 = 4
)

const KeyboardOverrunMakeCode = 0xFF

// RAWMOUSE.Flags
const (
	MouseMoveRelative      uint16 = 0x00
	MouseMoveAbsolute      uint16 = 0x01
	MouseVirtualDesktop    uint16 = 0x02
	MouseAttributesChanged uint16 = 0x04
	MouseMoveNoCoalesce    uint16 = 0x08
)

// RAWMOUSE.ButtonFlags
const (
	RIMouseLeftButtonDown   uint16 = 0x0001
	RIMouseLeftButtonUp     uint16 = 0x0002
	RIMouseRightButtonDown  uint16 = 0x0004
	RIMouseRightButtonUp    uint16 = 0x0008
	RIMouseMiddleButtonDown uint16 = 0x0010
	RIMouseMiddleButtonUp   uint16 = 0x0020
	RIMouseButton4Down      uint16 = 0x0040
	RIMouseButton4Up        uint16 = 0x0080
	RIMouseButton5Down      uint16 = 0x0100
	RIMouseButton5Up        uint16 = 0x0200
	RIMouseWheel            uint16 = 0x0400
	RIMouseHWheel           uint16 = 0x0800
)

const WheelDelta = 120

const VKPause = 0x13

// Generic desktop usages registered for raw input.
const (
	HIDUsagePageGeneric = 0x01
	HIDUsageMouse       = 0x02
	HIDUsageKeyboard    = 0x06
)

type RawInputHeader struct {
	Type   uint32
	Size   uint32
	Device uintptr
	WParam uintptr
}

type RawKeyboard struct {
	MakeCode         uint16
	Flags            uint16
	Reserved         uint16
	VKey             uint16
	Message          uint32
	ExtraInformation uint32
}

type RawMouse struct {
	Flags            uint16
	ButtonFlags      uint16
	ButtonData       uint16
	RawButtons       uint32
	LastX            int32
	LastY            int32
	ExtraInformation uint32
}

// RawInput is a decoded RAWINPUT record. Only the member selected by
// Header.Type is meaningful.
type RawInput struct {
	Header   RawInputHeader
	Keyboard RawKeyboard
	Mouse    RawMouse
}

const (
	rawKeyboardSize = 16
	rawMouseSize    = 24
)

// HeaderSize is sizeof(RAWINPUTHEADER) for the running architecture.
const HeaderSize = 8 + 2*unsafe.Sizeof(uintptr(0))

var ErrShortRawInput = errors.New("raw input record is truncated")

// ParseRawInput decodes a RAWINPUT record as filled in by GetRawInputData.
func ParseRawInput(buf []byte) (RawInput, error) {
	var ri RawInput
	if len(buf) < int(HeaderSize) {
		return ri, errors.Wrapf(ErrShortRawInput, "header needs %d bytes, have %d", HeaderSize, len(buf))
	}
	le := binary.LittleEndian
	ri.Header.Type = le.Uint32(buf[0:4])
	ri.Header.Size = le.Uint32(buf[4:8])
	ri.Header.Device = readPointer(buf[8:])
	ri.Header.WParam = readPointer(buf[8+unsafe.Sizeof(uintptr(0)):])

	data := buf[HeaderSize:]
	switch ri.Header.Type {
	case RIMTypeKeyboard:
		if len(data) < rawKeyboardSize {
			return ri, errors.Wrap(ErrShortRawInput, "keyboard")
		}
		ri.Keyboard = RawKeyboard{
			MakeCode:         le.Uint16(data[0:2]),
			Flags:            le.Uint16(data[2:4]),
			Reserved:         le.Uint16(data[4:6]),
			VKey:             le.Uint16(data[6:8]),
			Message:          le.Uint32(data[8:12]),
			ExtraInformation: le.Uint32(data[12:16]),
		}
	case RIMTypeMouse:
		if len(data) < rawMouseSize {
			return ri, errors.Wrap(ErrShortRawInput, "mouse")
		}
		ri.Mouse = RawMouse{
			Flags:            le.Uint16(data[0:2]),
			ButtonFlags:      le.Uint16(data[4:6]),
			ButtonData:       le.Uint16(data[6:8]),
			RawButtons:       le.Uint32(data[8:12]),
			LastX:            int32(le.Uint32(data[12:16])),
			LastY:            int32(le.Uint32(data[16:20])),
			ExtraInformation: le.Uint32(data[20:24]),
		}
	}
	return ri, nil
}

func readPointer(b []byte) uintptr {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return uintptr(binary.LittleEndian.Uint64(b))
	}
	return uintptr(binary.LittleEndian.Uint32(b))
}

// EncodeRawInput is the inverse of ParseRawInput. It produces the bytes the
// OS would hand back for ri.
func EncodeRawInput(ri RawInput) []byte {
	le := binary.LittleEndian
	size := int(HeaderSize)
	switch ri.Header.Type {
	case RIMTypeKeyboard:
		size += rawKeyboardSize
	case RIMTypeMouse:
		size += rawMouseSize
	}
	buf := make([]byte, size)
	le.PutUint32(buf[0:4], ri.Header.Type)
	le.PutUint32(buf[4:8], uint32(size))
	writePointer(buf[8:], ri.Header.Device)
	writePointer(buf[8+unsafe.Sizeof(uintptr(0)):], ri.Header.WParam)

	data := buf[HeaderSize:]
	switch ri.Header.Type {
	case RIMTypeKeyboard:
		kb := ri.Keyboard
		le.PutUint16(data[0:2], kb.MakeCode)
		le.PutUint16(data[2:4], kb.Flags)
		le.PutUint16(data[4:6], kb.Reserved)
		le.PutUint16(data[6:8], kb.VKey)
		le.PutUint32(data[8:12], kb.Message)
		le.PutUint32(data[12:16], kb.ExtraInformation)
	case RIMTypeMouse:
		m := ri.Mouse
		le.PutUint16(data[0:2], m.Flags)
		le.PutUint16(data[4:6], m.ButtonFlags)
		le.PutUint16(data[6:8], m.ButtonData)
		le.PutUint32(data[8:12], m.RawButtons)
		le.PutUint32(data[12:16], uint32(m.LastX))
		le.PutUint32(data[16:20], uint32(m.LastY))
		le.PutUint32(data[20:24], m.ExtraInformation)
	}
	return buf
}

func writePointer(b []byte, v uintptr) {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		binary.LittleEndian.PutUint64(b, uint64(v))
		return
	}
	binary.LittleEndian.PutUint32(b, uint32(v))
}
