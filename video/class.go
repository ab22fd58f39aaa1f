package video

import (
	"github.com/Stavrolet/ByteEngineD3D11/w32/types/wm"
	"github.com/pkg/errors"
)

// ErrNotAttached is returned by Lookup for a handle whose window has not
// been associated yet (messages sent before the non-client create message)
// or was already destroyed.
var ErrNotAttached = errors.New("window is not attached to its class")

// Class is a registered window class. Its Dispatch method is the window
// procedure: the host routes every message of the class through it, and
// Dispatch finds the owning Window in the association table.
type Class struct {
	Name string

	host       Host
	registered bool

	nextToken uintptr
	pending   map[uintptr]*Window
	attached  map[Handle]*Window
}

func NewClass(name string, host Host) *Class {
	return &Class{
		Name:     name,
		host:     host,
		pending:  make(map[uintptr]*Window),
		attached: make(map[Handle]*Window),
	}
}

func (c *Class) Register() error {
	if c.registered {
		return nil
	}
	if err := c.host.RegisterClass(c); err != nil {
		return errors.Wrapf(err, "unable to register window class %q", c.Name)
	}
	c.registered = true
	return nil
}

func (c *Class) Unregister() error {
	if !c.registered {
		return nil
	}
	if err := c.host.UnregisterClass(c); err != nil {
		return errors.Wrapf(err, "unable to unregister window class %q", c.Name)
	}
	c.registered = false
	return nil
}

// reserve returns the creation token that associates w with the handle the
// host reports during window creation.
func (c *Class) reserve(w *Window) uintptr {
	c.nextToken++
	c.pending[c.nextToken] = w
	return c.nextToken
}

func (c *Class) release(token uintptr) {
	delete(c.pending, token)
}

func (c *Class) attach(h Handle, w *Window) {
	c.attached[h] = w
	w.handle = h
}

func (c *Class) detach(h Handle) {
	delete(c.attached, h)
}

func (c *Class) Lookup(h Handle) (*Window, error) {
	w, ok := c.attached[h]
	if !ok {
		return nil, errors.Wrapf(ErrNotAttached, "handle %#x", uintptr(h))
	}
	return w, nil
}

func (c *Class) Dispatch(h Handle, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == wm.NCCreate {
		token := c.host.CreateParam(lParam)
		if w, ok := c.pending[token]; ok {
			c.release(token)
			c.attach(h, w)
		}
		return c.host.DefWindowProc(h, msg, wParam, lParam)
	}

	w, err := c.Lookup(h)
	if err != nil {
		return c.host.DefWindowProc(h, msg, wParam, lParam)
	}
	if msg == wm.NCDestroy {
		c.detach(h)
	}
	if handled, ret := w.OnMessage(msg, wParam, lParam); handled {
		return ret
	}
	return c.host.DefWindowProc(h, msg, wParam, lParam)
}
