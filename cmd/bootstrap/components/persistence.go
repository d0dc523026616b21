package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"supplier-marketplace/internal/infra/readstore"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/infra/uow"
	"supplier-marketplace/internal/usecase/queries"
	"supplier-marketplace/internal/usecase/shared"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Company
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CompanyReadQueries)),
		),
		fx.Annotate(
			readstore.NewCompanyReadStore,
			fx.As(new(queries.CompanyReadStore)),
		),
		// Grant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.GrantReadQueries)),
		),
		fx.Annotate(
			readstore.NewGrantReadStore,
			fx.As(new(queries.GrantReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		func(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
			return uow.NewPostgresUoW(pool, q)
		},
		func(u shared.UnitOfWork) queries.ReadOnlyRunner {
			return u
		},
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
