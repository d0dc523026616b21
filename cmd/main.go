package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"supplier-marketplace/cmd/bootstrap"
	"supplier-marketplace/internal/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func init() {
	// release unless GIN_MODE says otherwise
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// middleware is attached by the handler module
func newEngine() *gin.Engine {
	return gin.New()
}

func newHTTPServer(engine *gin.Engine, cfg config.Config) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// @title           supplier-marketplace
// @version         1.0
// @description     Supplier registry, operator console and registration saga.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func serve(lc fx.Lifecycle, srv *http.Server, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// bind synchronously so a taken port fails startup
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("listening", "address", ln.Addr().String(), "mode", gin.Mode(), "services", cfg.Server.Services)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("draining http server")
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	fx.New(
		bootstrap.Module,
		fx.Provide(newEngine, newHTTPServer),
		fx.Invoke(serve),
		fx.StopTimeout(shutdownTimeout),
		fx.WithLogger(bootstrap.FxLogger),
	).Run()
}
