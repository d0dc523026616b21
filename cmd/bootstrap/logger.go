package bootstrap

import (
	"log/slog"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"supplier-marketplace/internal/handler/middleware"
	"supplier-marketplace/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

// NewLogger installs the logger as the slog default, tagged with the services this process
// mounts.
func NewLogger(cfg config.Config) *middleware.Logger {
	l := middleware.NewLogger(cfg.Log)
	slog.SetDefault(l.GetSlogLogger().With("services", strings.Join(cfg.Server.Services, ",")))
	return l
}

// FxLogger routes fx's own lifecycle events through slog at debug level.
func FxLogger(l *slog.Logger) fxevent.Logger {
	fl := &fxevent.SlogLogger{Logger: l}
	fl.UseLogLevel(slog.LevelDebug)
	return fl
}
