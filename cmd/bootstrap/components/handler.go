package components

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"supplier-marketplace/internal/handler"
	"supplier-marketplace/internal/handler/api"
	"supplier-marketplace/internal/handler/middleware"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUsersHandler,
		api.NewCompaniesHandler,
		api.NewOperatorHandler,
		api.NewRegistrationHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Users        *api.UsersHandler
	Companies    *api.CompaniesHandler
	Operator     *api.OperatorHandler
	Registration *api.RegistrationHandler
	Auth         *middleware.AuthMiddleware
	RateLimit    *middleware.RateLimiter
	Metrics      *middleware.Metrics
	Logger       *middleware.Logger
}

func registerRoutes(p routerParams, cfg config.Config, engine *gin.Engine) error {
	return handler.NewRouter(engine, cfg, handler.Handlers{
		Users:        p.Users,
		Companies:    p.Companies,
		Operator:     p.Operator,
		Registration: p.Registration,
	}, handler.Middlewares{
		Auth:      p.Auth,
		RateLimit: p.RateLimit,
		Metrics:   p.Metrics,
		Logger:    p.Logger,
	})
}
