package cloudbridge

import (
	"context"
	"log/slog"

	"github.com/viant/cloudbridge/cloudstore"
	"github.com/viant/cloudbridge/internal/config"
	"github.com/viant/cloudbridge/server"
	"github.com/viant/jsonrpc/transport"
)

// Config holds cloud bridge settings.
type Config = config.Config

// Service hosts the CloudStore module.
type Service struct {
	module *cloudstore.Module
	server *server.Server
}

// Module returns the CloudStore module
func (s *Service) Module() *cloudstore.Module {
	return s.module
}

// Stdio returns a JSON-RPC server over standard input/output.
func (s *Service) Stdio(ctx context.Context) *server.StdioServer {
	return s.server.Stdio(ctx)
}

// Client returns an in-process client; notifier receives forwarded events and may be nil.
func (s *Service) Client(ctx context.Context, notifier transport.Notifier) *server.Adapter {
	return s.server.AsClient(ctx, notifier)
}

// Close waits for in-flight calls and releases resources.
func (s *Service) Close() error {
	return s.module.Close()
}

// NewService creates the CloudStore module and its JSON-RPC host.
func NewService(ctx context.Context, cfg *Config, logger *slog.Logger) (*Service, error) {
	module, err := cloudstore.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	options := []server.Option{server.WithEmitter(module.Emitter())}
	if logger != nil {
		options = append(options, server.WithLogger(logger))
	}
	srv, err := server.New(module, options...)
	if err != nil {
		_ = module.Close()
		return nil, err
	}
	return &Service{module: module, server: srv}, nil
}
