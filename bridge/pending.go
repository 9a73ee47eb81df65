package bridge

import (
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// PendingCall tracks one in-flight invocation until its terminal completion.
type PendingCall struct {
	ID        string
	Module    string
	Method    string
	CreatedAt time.Time

	completion Completion
}

// pendingCalls is the registry of in-flight invocations. Entries are keyed by
// call identity, so calls sharing an ID never settle each other. Removal
// elects the single deliverer of a call.
type pendingCalls struct {
	calls *xsync.Map[*PendingCall, struct{}]
}

func (p *pendingCalls) put(call *PendingCall) {
	p.calls.Store(call, struct{}{})
}

// take removes the call; only the first caller gets true.
func (p *pendingCalls) take(call *PendingCall) bool {
	_, ok := p.calls.LoadAndDelete(call)
	return ok
}

func (p *pendingCalls) list() []PendingCall {
	ret := make([]PendingCall, 0, p.calls.Size())
	p.calls.Range(func(call *PendingCall, _ struct{}) bool {
		ret = append(ret, PendingCall{ID: call.ID, Module: call.Module, Method: call.Method, CreatedAt: call.CreatedAt})
		return true
	})
	return ret
}

func newPendingCalls() *pendingCalls {
	return &pendingCalls{calls: xsync.NewMap[*PendingCall, struct{}]()}
}
