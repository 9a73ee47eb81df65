package bridge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Dispatcher routes invocations to registered handlers and delivers exactly
// one completion per invocation.
type Dispatcher struct {
	name    string
	mux     sync.RWMutex
	methods map[string]Handler
	pending *pendingCalls
	workers *semaphore.Weighted
	logger  *slog.Logger
	newID   func() string
	running sync.WaitGroup
}

// Name returns module name
func (d *Dispatcher) Name() string {
	return d.name
}

// Register adds a method; the name must be unique within the module.
func (d *Dispatcher) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("method name is empty: %w", errInvalidRegistration)
	}
	if handler == nil {
		return fmt.Errorf("%v: handler is nil: %w", name, errInvalidRegistration)
	}
	d.mux.Lock()
	defer d.mux.Unlock()
	if _, ok := d.methods[name]; ok {
		return &DuplicateMethodError{Module: d.name, Method: name}
	}
	d.methods[name] = handler
	return nil
}

// Implements returns true if method is registered
func (d *Dispatcher) Implements(method string) bool {
	_, ok := d.handler(method)
	return ok
}

// Methods returns registered method names in lexical order.
func (d *Dispatcher) Methods() []string {
	d.mux.RLock()
	defer d.mux.RUnlock()
	ret := make([]string, 0, len(d.methods))
	for name := range d.methods {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Pending returns a snapshot of in-flight invocations.
func (d *Dispatcher) Pending() []PendingCall {
	return d.pending.list()
}

// Wait blocks until every scheduled handler has delivered its completion.
func (d *Dispatcher) Wait() {
	d.running.Wait()
}

// Invoke schedules method for execution and returns immediately. An unknown
// method is rejected synchronously: completion receives UNKNOWN_METHOD and the
// *UnknownMethodError is returned. Otherwise the handler runs on its own
// goroutine and completion receives exactly one Resolve or Reject.
//
// Cancelling ctx does not abort a running handler.
func (d *Dispatcher) Invoke(ctx context.Context, method string, args []any, completion Completion) error {
	if completion == nil {
		completion = discard{}
	}
	handler, ok := d.handler(method)
	if !ok {
		err := &UnknownMethodError{Module: d.name, Method: method}
		d.logger.Debug("unknown method", "module", d.name, "method", method)
		d.deliver(&PendingCall{Module: d.name, Method: method, completion: completion}, nil, err.Rejection())
		return err
	}
	call := &PendingCall{
		ID:         d.newID(),
		Module:     d.name,
		Method:     method,
		CreatedAt:  time.Now(),
		completion: completion,
	}
	d.pending.put(call)
	d.running.Add(1)
	go d.run(context.WithoutCancel(ctx), call, handler, args)
	return nil
}

func (d *Dispatcher) run(ctx context.Context, call *PendingCall, handler Handler, args []any) {
	defer d.running.Done()
	if d.workers != nil {
		// ctx carries no cancellation, so Acquire only returns once a slot is free.
		_ = d.workers.Acquire(ctx, 1)
		defer d.workers.Release(1)
	}
	d.logger.Debug("invoke", "module", d.name, "method", call.Method, "id", call.ID, "args", len(args))
	value, err := d.call(ctx, call, handler, args)
	if !d.pending.take(call) {
		d.logger.Error("pending call already settled", "module", d.name, "method", call.Method, "id", call.ID)
		return
	}
	if err != nil {
		rejection := normalize(err)
		d.logger.Warn("handler failed", "module", d.name, "method", call.Method, "id", call.ID, "reason", rejection.Reason, "error", rejection.Message)
		d.deliver(call, nil, rejection)
		return
	}
	d.deliver(call, value, nil)
}

func (d *Dispatcher) call(ctx context.Context, call *PendingCall, handler Handler, args []any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panic", "module", d.name, "method", call.Method, "id", call.ID, "panic", r)
			value, err = nil, fmt.Errorf("%v: panic: %v", call.Method, r)
		}
	}()
	return handler.Handle(ctx, args)
}

// deliver invokes the completion; a panicking callback must not take the
// worker goroutine down with it.
func (d *Dispatcher) deliver(call *PendingCall, value any, rejection *Error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("completion panic", "module", d.name, "method", call.Method, "id", call.ID, "panic", r)
		}
	}()
	if rejection != nil {
		call.completion.Reject(rejection)
		return
	}
	call.completion.Resolve(value)
}

func (d *Dispatcher) handler(method string) (Handler, bool) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	handler, ok := d.methods[method]
	return handler, ok
}

// New creates a dispatcher for the named module. A duplicated registration
// aborts construction.
func New(name string, registrations []Registration, options ...Option) (*Dispatcher, error) {
	if name == "" {
		return nil, fmt.Errorf("module name is empty: %w", errInvalidRegistration)
	}
	ret := &Dispatcher{
		name:    name,
		methods: make(map[string]Handler, len(registrations)),
		pending: newPendingCalls(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:   uuid.NewString,
	}
	for _, option := range options {
		if err := option(ret); err != nil {
			return nil, err
		}
	}
	for _, registration := range registrations {
		if err := ret.Register(registration.Name, registration.Handler); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

var _ Module = (*Dispatcher)(nil)
