//go:build windows

package w32

import (
	win "github.com/AllenDang/w32"
)

type Cursor struct {
	h win.HCURSOR
}

func (c *Cursor) handle() win.HCURSOR {
	if c == nil {
		return 0
	}
	return c.h
}

// ArrowCursor is the standard arrow system cursor.
func ArrowCursor() *Cursor {
	return &Cursor{h: win.LoadCursor(0, win.MakeIntResource(win.IDC_ARROW))}
}
