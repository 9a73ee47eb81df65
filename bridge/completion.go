package bridge

import (
	"context"
	"sync"
)

// Completion is the resolve/reject pair of one asynchronous invocation.
// The dispatcher calls exactly one of its methods, exactly once.
type Completion interface {
	Resolve(value any)
	Reject(err *Error)
}

// Callbacks adapts a pair of functions to Completion; nil functions are skipped.
type Callbacks struct {
	OnResolve func(value any)
	OnReject  func(err *Error)
}

func (c *Callbacks) Resolve(value any) {
	if c.OnResolve != nil {
		c.OnResolve(value)
	}
}

func (c *Callbacks) Reject(err *Error) {
	if c.OnReject != nil {
		c.OnReject(err)
	}
}

// Promise is a Completion that can be awaited.
type Promise struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   *Error
}

func (p *Promise) Resolve(value any) {
	p.once.Do(func() {
		p.value = value
		close(p.done)
	})
}

func (p *Promise) Reject(err *Error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Done is closed once the promise settles.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx is done. A rejection is
// returned as *Error.
func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.value, nil
}

// NewPromise creates an unsettled promise
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

type discard struct{}

func (discard) Resolve(any)    {}
func (discard) Reject(*Error) {}
