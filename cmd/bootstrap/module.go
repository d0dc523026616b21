package bootstrap

import (
	"go.uber.org/fx"

	"supplier-marketplace/cmd/bootstrap/components"
	"supplier-marketplace/internal/pkg/clock"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	DBModule,
	JWTModule,
	EventsModule,
	components.PersistenceModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
