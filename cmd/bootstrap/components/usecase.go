package components

import (
	"go.uber.org/fx"

	"supplier-marketplace/internal/domain/company"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/jwt"
	"supplier-marketplace/internal/usecase"
	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/queries"
	"supplier-marketplace/internal/usecase/registration"
	"supplier-marketplace/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseRegistrationModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) company.RegionRule {
		return company.NewRegionRule(cfg.Region.INNPrefix, cfg.Region.Name)
	},
	func(s *jwt.Service) commands.TokenIssuer {
		return s
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCompanyCommands,
		commands.NewOperatorCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCompanyQueries,
		func(
			runner queries.ReadOnlyRunner,
			stats queries.StatsReadStore,
			companies queries.CompanyReadStore,
			grants queries.GrantReadStore,
			region company.RegionRule,
			cfg config.Config,
			clk clock.Clock,
		) queries.OperatorQueries {
			return queries.NewOperatorQueries(runner, stats, companies, grants, region, cfg.Region.NewCompaniesSince, clk)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		func(s *jwt.Service) usecase.ClaimsParser {
			return s
		},
		usecase.NewTokenValidator,
	),
)

var usecaseRegistrationModule = fx.Module("usecase/registration",
	fx.Provide(
		fx.Annotate(
			func(
				credentials registration.CredentialStore,
				companies registration.CompanyRegistry,
				publisher shared.EventPublisher,
				region company.RegionRule,
				clk clock.Clock,
			) *registration.Orchestrator {
				return registration.NewOrchestrator(credentials, companies, publisher, region, clk)
			},
			fx.As(new(registration.Registrar)),
		),
	),
)
