package components

import (
	"net/http"

	"go.uber.org/fx"

	"supplier-marketplace/internal/infra/client"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/usecase/registration"
)

// ClientModule provides the HTTP clients the registration saga uses to reach the users and
// companies services. Both share one transport bounded by DOWNSTREAM_TIMEOUT.
var ClientModule = fx.Module("client",
	fx.Provide(
		fx.Private,
		newDownstreamHTTPClient,
	),
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, clk clock.Clock, hc *http.Client) *client.UsersClient {
				return client.NewUsersClient(cfg.Downstream.UsersURL, cfg.Downstream.Timeout, cfg.JWT.TTL, clk, hc)
			},
			fx.As(new(registration.CredentialStore)),
		),
		fx.Annotate(
			func(cfg config.Config, hc *http.Client) *client.CompaniesClient {
				return client.NewCompaniesClient(cfg.Downstream.CompaniesURL, cfg.Downstream.Timeout, hc)
			},
			fx.As(new(registration.CompanyRegistry)),
		),
	),
)

func newDownstreamHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Downstream.Timeout}
}
