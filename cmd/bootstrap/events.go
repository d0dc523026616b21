package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"supplier-marketplace/internal/infra/events"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/usecase/shared"
)

const (
	amqpDialRetries = 5
	amqpDialDelay   = 2 * time.Second
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when AMQP_URL is unset.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if !cfg.AMQP.Enabled() {
		slog.Info("AMQP_URL not set, domain events are not published")
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange, amqpDialRetries, amqpDialDelay)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
