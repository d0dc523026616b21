package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/handler/api"
	"supplier-marketplace/internal/handler/middleware"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/errs"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts. A service the process does not serve may leave
// its handler nil.
type Handlers struct {
	Users        *api.UsersHandler
	Companies    *api.CompaniesHandler
	Operator     *api.OperatorHandler
	Registration *api.RegistrationHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
	Metrics   *middleware.Metrics
	Logger    *middleware.Logger
}

// NewRouter fails only on an unparsable trusted proxy list.
func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) error {
	// ClientIP, and with it the rate-limit key, honours X-Forwarded-For from these peers only
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return errs.Wrap(err, "trusted proxies")
	}
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, cfg.Server, h, mw)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(mw.Metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, srv config.ServerConfig, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", mw.Metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{mw.RateLimit.Limit()}

	if srv.Serves(config.ServiceUsers) && h.Users != nil {
		addRoutes(&engine.RouterGroup, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Users.Register, Mw: limited},
			{Method: http.MethodPost, Path: "/login", Handler: h.Users.Login, Mw: limited},
			{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Users.DeleteUser},
		})
	}

	if srv.Serves(config.ServiceCompanies) && h.Companies != nil {
		addRoutes(&engine.RouterGroup, []route{
			{Method: http.MethodPost, Path: "/companies", Handler: h.Companies.Create},
			{Method: http.MethodGet, Path: "/companies", Handler: h.Companies.List},
			{Method: http.MethodGet, Path: "/companies/region/:regionName", Handler: h.Companies.ListByRegion},
			{Method: http.MethodPost, Path: "/companies/:id/support-survey", Handler: h.Companies.SaveSurvey},
		})

		own := engine.Group("/api/companies")
		own.Use(mw.Auth.RequireAuth())
		addRoutes(own, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Companies.GetOwn},
			{Method: http.MethodPut, Path: "/me", Handler: h.Companies.UpdateOwn},
		})
	}

	if srv.Serves(config.ServiceOperator) && h.Operator != nil {
		operator := engine.Group("/api/operator")
		operator.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRole(user.RoleOperator))
		addRoutes(operator, []route{
			{Method: http.MethodGet, Path: "/registry-stats", Handler: h.Operator.RegistryStats},
			{Method: http.MethodGet, Path: "/support-stats", Handler: h.Operator.SupportStats},
			{Method: http.MethodGet, Path: "/company-by-inn/:inn", Handler: h.Operator.CompanyByINN},
			{Method: http.MethodGet, Path: "/company/:companyId/grants", Handler: h.Operator.ListGrants},
			{Method: http.MethodPost, Path: "/confirm-support", Handler: h.Operator.ConfirmSupport},
		})
	}

	// The saga talks to the users and companies services over HTTP, so any process can host it.
	if h.Registration != nil {
		registrations := engine.Group("/api/registrations")
		addRoutes(registrations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Registration.Register, Mw: limited},
			{Method: http.MethodPost, Path: "/survey", Handler: h.Registration.CompleteSurvey, Mw: limited},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
