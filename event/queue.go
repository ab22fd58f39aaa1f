package event

import (
	"github.com/Stavrolet/ByteEngineD3D11/flagset"
	"github.com/pkg/errors"
)

const MaxQueued = 65535

var ErrQueueFull = errors.New("event queue is full")

// Filter decides whether an event is kept. Returning false drops it before
// watchers see it.
type Filter func(userdata interface{}, ev Event) bool

// Watcher is called for every event accepted into the queue, in the order
// the events are added.
type Watcher struct {
	Callback func(userdata interface{}, ev Event)
	Userdata interface{}
}

// Queue is the per-frame event buffer of a window. It is owned by the
// thread running the message pump and is not safe for concurrent use.
type Queue struct {
	events   []Event
	watchers []*Watcher

	ok     Filter
	okdata interface{}

	disabled flagset.Set[uint16]
}

func NewQueue() *Queue {
	return &Queue{disabled: flagset.New[uint16](uint(kindCount), 0)}
}

// Add appends ev to the buffer. It reports false when the event was dropped
// by a disabled kind or the filter.
func (q *Queue) Add(ev Event) (bool, error) {
	if ev == nil || !q.Enabled(ev.Kind()) {
		return false, nil
	}
	if q.ok != nil && !q.ok(q.okdata, ev) {
		return false, nil
	}
	if len(q.events) >= MaxQueued {
		return false, errors.Wrapf(ErrQueueFull, "dropping %s", ev.Kind())
	}
	q.events = append(q.events, ev)
	for _, w := range q.watchers {
		w.Callback(w.Userdata, ev)
	}
	return true, nil
}

// Reset empties the buffer, keeping its storage for the next frame.
func (q *Queue) Reset() {
	for i := range q.events {
		q.events[i] = nil
	}
	q.events = q.events[:0]
}

// Events returns the events buffered since the last Reset. The slice is
// only valid until the next Reset.
func (q *Queue) Events() []Event {
	return q.events
}

func (q *Queue) Len() int {
	return len(q.events)
}

func (q *Queue) SetFilter(f Filter, userdata interface{}) {
	q.ok = f
	q.okdata = userdata
	if f != nil {
		q.retain(func(ev Event) bool { return f(userdata, ev) })
	}
}

func (q *Queue) retain(keep func(Event) bool) {
	kept := q.events[:0]
	for _, ev := range q.events {
		if keep(ev) {
			kept = append(kept, ev)
		}
	}
	for i := len(kept); i < len(q.events); i++ {
		q.events[i] = nil
	}
	q.events = kept
}

func (q *Queue) AddWatch(watcher *Watcher) {
	q.watchers = append(q.watchers, watcher)
}

func (q *Queue) DelWatch(watcher *Watcher) {
	updatedWatchers := q.watchers[:0]
	for _, w := range q.watchers {
		if w != watcher {
			updatedWatchers = append(updatedWatchers, w)
		}
	}
	q.watchers = updatedWatchers
}

// Disable drops every future event of kind k, and the buffered ones.
func (q *Queue) Disable(k Kind) {
	q.disabled.Set(1 << k)
	q.retain(func(ev Event) bool { return ev.Kind() != k })
}

func (q *Queue) Enable(k Kind) {
	q.disabled.Clear(1 << k)
}

func (q *Queue) Enabled(k Kind) bool {
	return !q.disabled.Has(1 << k)
}
