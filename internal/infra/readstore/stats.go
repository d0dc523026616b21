package readstore

import (
	"context"
	"time"

	"supplier-marketplace/internal/infra"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
)

const topInterestsLimit = 3

type StatsReadQueries interface {
	GetRegistryStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRegistryStatsParams) (sqlc.GetRegistryStatsRow, error)
	CountAwareCompanies(ctx context.Context, db sqlc.DBTX) (int64, error)
	TopInterests(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.TopInterestsRow, error)
	ConfirmedGrantsByDescription(ctx context.Context, db sqlc.DBTX) ([]sqlc.ConfirmedGrantsByDescriptionRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
}

func NewStatsReadStore(queries StatsReadQueries) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
	}
}

// Registry counts companies in one statement; innPattern is a LIKE pattern.
func (r *StatsReadStore) Registry(ctx context.Context, db sqlc.DBTX, innPattern string, since time.Time) (*queries.RegistryStatsView, error) {
	row, err := r.queries.GetRegistryStats(ctx, db, sqlc.GetRegistryStatsParams{
		InnPattern: innPattern,
		Since:      pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get registry stats", err)
	}

	return &queries.RegistryStatsView{
		TotalCompanies:     row.TotalCompanies,
		RegionCompanies:    row.RegionCompanies,
		NewTotalCompanies:  row.NewTotalCompanies,
		NewRegionCompanies: row.NewRegionCompanies,
	}, nil
}

// Support runs several statements; callers wanting one snapshot pass a read-only tx as db.
func (r *StatsReadStore) Support(ctx context.Context, db sqlc.DBTX) (*queries.SupportStatsView, error) {
	aware, err := r.queries.CountAwareCompanies(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count aware companies", err)
	}

	interestRows, err := r.queries.TopInterests(ctx, db, topInterestsLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get top interests", err)
	}

	grantRows, err := r.queries.ConfirmedGrantsByDescription(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get confirmed grants stats", err)
	}

	view := &queries.SupportStatsView{
		CompaniesAwareCount:  aware,
		TopInterests:         make([]queries.InterestCount, 0, len(interestRows)),
		ConfirmedGrantsStats: make([]queries.GrantDescriptionCount, 0, len(grantRows)),
	}
	for _, row := range interestRows {
		view.TopInterests = append(view.TopInterests, queries.InterestCount{Interest: row.Interest, Count: row.Count})
	}
	for _, row := range grantRows {
		view.ConfirmedGrantsStats = append(view.ConfirmedGrantsStats, queries.GrantDescriptionCount{
			Description:  row.Description,
			CompanyCount: row.CompanyCount,
		})
	}
	return view, nil
}
