// Package wm holds the window message identifiers and message parameter
// values handled by the engine window.
package wm

// https://learn.microsoft.com/en-us/windows/win32/winmsg/about-messages-and-message-queues
const (
	Null          uint32 = 0x0000
	Create        uint32 = 0x0001
	Destroy       uint32 = 0x0002
	Move          uint32 = 0x0003
	Size          uint32 = 0x0005
	Activate      uint32 = 0x0006
	SetFocus      uint32 = 0x0007
	KillFocus     uint32 = 0x0008
	Paint         uint32 = 0x000F
	Close         uint32 = 0x0010
	Quit          uint32 = 0x0012
	EraseBkgnd    uint32 = 0x0014
	ShowWindow    uint32 = 0x0018
	ActivateApp   uint32 = 0x001C
	GetMinMaxInfo uint32 = 0x0024
	DisplayChange uint32 = 0x007E
	NCCreate      uint32 = 0x0081
	NCDestroy     uint32 = 0x0082
	Input         uint32 = 0x00FF
	KeyDown       uint32 = 0x0100
	KeyUp         uint32 = 0x0101
	SysKeyDown    uint32 = 0x0104
	SysKeyUp      uint32 = 0x0105
	SysCommand    uint32 = 0x0112
	User          uint32 = 0x0400
)

// wParam values of Size.
const (
	SizeRestored  = 0
	SizeMinimized = 1
	SizeMaximized = 2
	SizeMaxShow   = 3
	SizeMaxHide   = 4
)

// Low word of the wParam of Activate.
const (
	ActivateInactive    = 0
	ActivateActive      = 1
	ActivateClickActive = 2
)

func LoWord(v uintptr) uint16 {
	return uint16(v & 0xffff)
}

func HiWord(v uintptr) uint16 {
	return uint16((v >> 16) & 0xffff)
}
