//go:build windows

package w32

import (
	win "github.com/AllenDang/w32"
)

type Brush struct {
	h win.HBRUSH
}

func (b *Brush) handle() win.HBRUSH {
	if b == nil {
		return 0
	}
	return b.h
}

// BlackBrush is the stock black brush. The swap chain covers the client
// area, so the class background only shows while the window is resized.
func BlackBrush() *Brush {
	return &Brush{h: win.HBRUSH(win.GetStockObject(win.BLACK_BRUSH))}
}
