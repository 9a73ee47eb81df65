package server

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
)

// Adapter invokes a server Handler in-process, the way a host would over a transport.
type Adapter struct {
	handler *Handler
	seq     atomic.Int64
}

// Invoke calls method with positional arguments and returns the raw JSON result.
func (a *Adapter) Invoke(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	if args == nil {
		args = []any{}
	}
	params, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	req := &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Method: method, Params: params, Id: int(a.seq.Add(1))}
	response := &jsonrpc.Response{}
	a.handler.Serve(ctx, req, response)
	if response.Error != nil {
		return nil, response.Error
	}
	return response.Result, nil
}

// Notify sends a notification without params
func (a *Adapter) Notify(ctx context.Context, method string) {
	a.handler.OnNotification(ctx, &jsonrpc.Notification{Method: method})
}

// Close stops event forwarding
func (a *Adapter) Close() {
	a.handler.Close()
}

// AsClient returns an in-process client; notifier receives forwarded events and may be nil.
func (s *Server) AsClient(ctx context.Context, notifier transport.Notifier) *Adapter {
	return &Adapter{handler: s.newHandler(ctx, notifier)}
}
