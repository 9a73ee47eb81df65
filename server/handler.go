package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/viant/cloudbridge/bridge"
	"github.com/viant/cloudbridge/schema"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/syncmap"
)

// Handler represents handler
type Handler struct {
	transport.Notifier
	*Server
	inflight       *syncmap.Map[string, *activeCall]
	mux            sync.Mutex
	removeListener func()
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	// Check for valid JSONRPC version
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	args, rpcErr := arguments(request.Params)
	if rpcErr != nil {
		response.Error = rpcErr
		return
	}
	id := fmt.Sprint(request.Id)
	call, ok := h.track(id, request.Method)
	if !ok {
		response.Error = jsonrpc.NewInvalidRequest(fmt.Sprintf("request %v is already in progress", id), nil)
		return
	}
	defer h.inflight.Delete(id)

	_ = h.module.Invoke(ctx, request.Method, args, call.promise)
	value, err := call.promise.Await(ctx)
	h.logger.Debug("request served", "id", id, "method", request.Method, "elapsed", time.Since(call.startedAt), "error", err)
	h.setResponse(response, value, err)
}

// InFlight returns number of requests awaiting completion
func (h *Handler) InFlight() int {
	return h.inflight.Size()
}

// track registers a request id; false means the id is already in flight.
func (h *Handler) track(id, method string) (*activeCall, bool) {
	h.mux.Lock()
	defer h.mux.Unlock()
	if _, ok := h.inflight.Get(id); ok {
		return nil, false
	}
	call := newActiveCall(method)
	h.inflight.Put(id, call)
	return call, true
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, err error) {
	if err != nil {
		response.Error = asError(err)
		return
	}
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	if h.emitter == nil {
		return
	}
	switch notification.Method {
	case schema.MethodStartObserving:
		h.emitter.StartObserving()
	case schema.MethodStopObserving:
		h.emitter.StopObserving()
	default:
		h.logger.Debug("notification ignored", "method", notification.Method)
	}
}

// Close stops forwarding events of this handler
func (h *Handler) Close() {
	if h.removeListener != nil {
		h.removeListener()
	}
}

// arguments decodes a positional params array; absent or null params mean no arguments.
func arguments(params json.RawMessage) ([]any, *jsonrpc.Error) {
	trimmed := bytes.TrimSpace(params)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, jsonrpc.NewInvalidParamsError("params must be a positional array", params)
	}
	var ret []any
	if err := json.Unmarshal(trimmed, &ret); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), params)
	}
	return ret, nil
}

func asError(err error) *jsonrpc.Error {
	var rejection *bridge.Error
	if !errors.As(err, &rejection) {
		return jsonrpc.NewInternalError(err.Error(), nil)
	}
	switch rejection.Code {
	case bridge.CodeUnknownMethod:
		return jsonrpc.NewError(schema.MethodNotFound, rejection.Message, rejection)
	default:
		return jsonrpc.NewError(schema.HandlerFailed, rejection.Message, rejection)
	}
}
