package server

import (
	"time"

	"github.com/viant/cloudbridge/bridge"
)

// activeCall tracks a request awaiting its module completion.
type activeCall struct {
	method    string
	startedAt time.Time
	promise   *bridge.Promise
}

func newActiveCall(method string) *activeCall {
	return &activeCall{method: method, startedAt: time.Now(), promise: bridge.NewPromise()}
}
