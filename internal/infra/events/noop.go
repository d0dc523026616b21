package events

import (
	"context"
	"log/slog"
)

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	slog.Debug("event dropped, no broker configured", "routing_key", routingKey)
	return nil
}
