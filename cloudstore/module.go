package cloudstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/viant/cloudbridge/bridge"
	"github.com/viant/cloudbridge/internal/config"
	"github.com/viant/cloudbridge/kv"
	"github.com/viant/cloudbridge/schema"
	"github.com/viant/cloudbridge/storage"
)

// Name is the module name exposed to the host.
const Name = "CloudStore"

// Module exposes document container and key-value operations as bridge methods.
type Module struct {
	*bridge.Dispatcher
	emitter *bridge.Emitter
	storage *storage.Service
	kv      *kv.Store
	logger  *slog.Logger
}

// Emitter returns the module event emitter
func (m *Module) Emitter() *bridge.Emitter {
	return m.emitter
}

// Constants returns values exported to the host at load time.
func (m *Module) Constants() map[string]any {
	return map[string]any{
		"containerPath":   m.storage.ContainerPath(),
		"containerURL":    m.storage.ContainerURL(),
		"supportedEvents": m.emitter.SupportedEvents(),
	}
}

// Close waits for in-flight handlers and releases the key-value store.
func (m *Module) Close() error {
	m.Dispatcher.Wait()
	return m.kv.Close()
}

func (m *Module) emit(ctx context.Context, event string, body any) {
	if err := m.emitter.Emit(ctx, event, body); err != nil {
		m.logger.Warn("emit failed", "event", event, "error", err)
	}
}

// New creates the CloudStore module
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Module, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	store, err := kv.Open(cfg.KVDir)
	if err != nil {
		return nil, err
	}
	ret := &Module{
		emitter: bridge.NewEmitter(schema.EventDocumentsStartGathering, schema.EventDocumentsFinishGathering),
		storage: storage.New(&storage.Config{
			ContainerURL:  cfg.ContainerURL,
			ContainerName: cfg.ContainerName,
			LocalURL:      cfg.LocalURL,
		}),
		kv:     store,
		logger: logger,
	}
	if cfg.ContainerURL != "" {
		if err = ret.storage.Init(ctx); err != nil {
			logger.Warn("container is not available", "url", cfg.ContainerURL, "error", err)
		}
	}
	ret.Dispatcher, err = bridge.New(Name, ret.registrations(),
		bridge.WithLogger(logger),
		bridge.WithConcurrency(cfg.Concurrency))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create %v module: %w", Name, err)
	}
	return ret, nil
}
