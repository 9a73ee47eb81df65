package server

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/viant/cloudbridge/bridge"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/syncmap"
)

// Server represents JSON-RPC host of a bridge module
type Server struct {
	module  bridge.Module
	emitter *bridge.Emitter
	logger  *slog.Logger
	stdioServer
}

// Module returns served module
func (s *Server) Module() bridge.Module {
	return s.module
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(ctx context.Context, notifier transport.Notifier) *Handler {
	ret := &Handler{
		Server:   s,
		Notifier: notifier,
		inflight: syncmap.NewMap[string, *activeCall](),
	}
	if s.emitter != nil && notifier != nil {
		ret.removeListener = s.emitter.AddListener(ret.forward)
	}
	return ret
}

// New creates a new Server instance
func New(module bridge.Module, options ...Option) (*Server, error) {
	if module == nil {
		return nil, errors.New("no module specified")
	}
	s := &Server{
		module: module,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}
