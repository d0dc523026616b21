package readstore

import (
	"context"

	"github.com/google/uuid"

	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/infra/repository/converter"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/usecase/queries"
)

type GrantReadQueries interface {
	ListGrantsByCompany(ctx context.Context, db sqlc.DBTX, companyID uuid.UUID) ([]sqlc.OperatorConfirmedGrants, error)
}

type GrantReadStore struct {
	queries GrantReadQueries
	db      sqlc.DBTX
}

func NewGrantReadStore(queries GrantReadQueries, db sqlc.DBTX) *GrantReadStore {
	return &GrantReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByCompany returns grants newest first.
func (r *GrantReadStore) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*queries.GrantView, error) {
	rows, err := r.queries.ListGrantsByCompany(ctx, r.db, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list grants", err)
	}

	views := make([]*queries.GrantView, 0, len(rows))
	for _, row := range rows {
		view, err := converter.GrantViewFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert grant row", err)
		}
		views = append(views, view)
	}
	return views, nil
}
