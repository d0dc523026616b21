package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/company"
	"supplier-marketplace/internal/infra"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/errs"
)

var ErrInvalidINN = errs.Mark(errs.New("inn must be a number"), errs.ErrInvalidInput)

type GrantReadStore interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*GrantView, error)
}

type StatsReadStore interface {
	Registry(ctx context.Context, db sqlc.DBTX, innPattern string, since time.Time) (*RegistryStatsView, error)
	Support(ctx context.Context, db sqlc.DBTX) (*SupportStatsView, error)
}

// ReadOnlyRunner opens a read-only snapshot; the unit of work satisfies it.
type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type OperatorQueries interface {
	RegistryStats(ctx context.Context) (*RegistryStatsView, error)
	SupportStats(ctx context.Context) (*SupportStatsView, error)
	FindCompanyByINN(ctx context.Context, inn string) (*CompanyRefView, error)
	ListGrants(ctx context.Context, companyID uuid.UUID) ([]*GrantView, error)
}

type operatorQueriesImpl struct {
	runner    ReadOnlyRunner
	stats     StatsReadStore
	companies CompanyReadStore
	grants    GrantReadStore
	region    company.RegionRule
	newWindow time.Duration
	clock     clock.Clock
}

func NewOperatorQueries(
	runner ReadOnlyRunner,
	stats StatsReadStore,
	companies CompanyReadStore,
	grants GrantReadStore,
	region company.RegionRule,
	newWindow time.Duration,
	clk clock.Clock,
) OperatorQueries {
	return &operatorQueriesImpl{
		runner:    runner,
		stats:     stats,
		companies: companies,
		grants:    grants,
		region:    region,
		newWindow: newWindow,
		clock:     clk,
	}
}

func (q *operatorQueriesImpl) RegistryStats(ctx context.Context) (*RegistryStatsView, error) {
	since := q.clock.Now().Add(-q.newWindow)

	var view *RegistryStatsView
	err := q.runner.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.stats.Registry(ctx, db, q.region.LikePattern(), since)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SupportStats reads all three aggregates from one snapshot.
func (q *operatorQueriesImpl) SupportStats(ctx context.Context) (*SupportStatsView, error) {
	var view *SupportStatsView
	err := q.runner.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.stats.Support(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *operatorQueriesImpl) FindCompanyByINN(ctx context.Context, inn string) (*CompanyRefView, error) {
	parsed, err := company.NewINN(inn)
	if err != nil {
		return nil, ErrInvalidINN
	}

	ref, err := q.companies.FindByINN(ctx, parsed.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return ref, nil
}

func (q *operatorQueriesImpl) ListGrants(ctx context.Context, companyID uuid.UUID) ([]*GrantView, error) {
	return q.grants.ListByCompany(ctx, companyID)
}
