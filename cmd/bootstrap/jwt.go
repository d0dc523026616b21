package bootstrap

import (
	"go.uber.org/fx"

	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.TTL, clk)
}
