package server

import (
	"context"

	"github.com/viant/cloudbridge/bridge"
	"github.com/viant/jsonrpc"
)

// forward sends a module event to the host as a notification named after the event.
func (h *Handler) forward(ctx context.Context, event *bridge.Event) {
	notification, err := jsonrpc.NewNotification(event.Name, event.Body)
	if err != nil {
		h.logger.Warn("failed to create notification", "event", event.Name, "error", err)
		return
	}
	if err = h.Notifier.Notify(ctx, notification); err != nil {
		h.logger.Warn("failed to notify", "event", event.Name, "error", err)
	}
}
