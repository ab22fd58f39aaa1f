// Package ticker measures frame time.
package ticker

import "time"

// MaxDelta bounds the time a single frame may report, so a stall such as a
// window drag does not turn into one huge simulation step.
const MaxDelta = 100 * time.Millisecond

type Clock struct {
	now    func() time.Time
	start  time.Time
	last   time.Time
	delta  time.Duration
	total  time.Duration
	frames uint64
}

func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock reading the time from now.
func NewWithSource(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset restarts the clock; the next Tick measures from here.
func (c *Clock) Reset() {
	c.start = c.now()
	c.last = c.start
	c.delta, c.total, c.frames = 0, 0, 0
}

// Tick ends a frame and returns its clamped duration.
func (c *Clock) Tick() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		d = 0
	}
	if d > MaxDelta {
		d = MaxDelta
	}
	c.delta = d
	c.total += d
	c.frames++
	return d
}

func (c *Clock) Delta() time.Duration {
	return c.delta
}

func (c *Clock) DeltaSeconds() float32 {
	return float32(c.delta.Seconds())
}

// Total is the sum of all clamped frame deltas.
func (c *Clock) Total() time.Duration {
	return c.total
}

func (c *Clock) Frames() uint64 {
	return c.frames
}

// Elapsed is the wall time since the clock was reset.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

func (c *Clock) ElapsedMS() uint32 {
	return uint32(c.Elapsed() / time.Millisecond)
}
