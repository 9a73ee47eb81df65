package bridge

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// ErrUnsupportedEvent is returned when emitting an event the module did not declare.
var ErrUnsupportedEvent = errors.New("unsupported event")

// Event is a module originated notification for the host.
type Event struct {
	Name string `json:"name"`
	Body any    `json:"body,omitempty"`
}

// Listener receives emitted events.
type Listener func(ctx context.Context, event *Event)

// Emitter delivers module events to listeners while the host observes them.
// Events emitted while nobody observes are dropped.
type Emitter struct {
	supported map[string]bool
	observing atomic.Bool
	listeners *xsync.Map[uint64, Listener]
	seq       atomic.Uint64
}

// SupportedEvents returns declared event names
func (e *Emitter) SupportedEvents() []string {
	ret := make([]string, 0, len(e.supported))
	for name := range e.supported {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func (e *Emitter) StartObserving() {
	e.observing.Store(true)
}

func (e *Emitter) StopObserving() {
	e.observing.Store(false)
}

func (e *Emitter) Observing() bool {
	return e.observing.Load()
}

// AddListener registers listener and returns a function removing it.
func (e *Emitter) AddListener(listener Listener) func() {
	id := e.seq.Add(1)
	e.listeners.Store(id, listener)
	return func() {
		e.listeners.Delete(id)
	}
}

// Emit sends the event to every listener.
func (e *Emitter) Emit(ctx context.Context, name string, body any) error {
	if !e.supported[name] {
		return fmt.Errorf("%v: %w", name, ErrUnsupportedEvent)
	}
	if !e.observing.Load() {
		return nil
	}
	event := &Event{Name: name, Body: body}
	e.listeners.Range(func(_ uint64, listener Listener) bool {
		listener(ctx, event)
		return true
	})
	return nil
}

// NewEmitter creates an emitter for the given event names
func NewEmitter(events ...string) *Emitter {
	ret := &Emitter{
		supported: make(map[string]bool, len(events)),
		listeners: xsync.NewMap[uint64, Listener](),
	}
	for _, name := range events {
		ret.supported[name] = true
	}
	return ret
}
