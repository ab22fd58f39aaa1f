//go:build windows

package w32

import (
	win "github.com/AllenDang/w32"
)

type Icon struct {
	h win.HICON
}

func (i *Icon) handle() win.HICON {
	if i == nil {
		return 0
	}
	return i.h
}

// ApplicationIcon is the default application system icon.
func ApplicationIcon() *Icon {
	return &Icon{h: win.LoadIcon(0, win.MakeIntResource(win.IDI_APPLICATION))}
}
