package repository

import (
	"context"

	"supplier-marketplace/internal/domain/company"
	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/infra/repository/converter"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/usecase/queries"
)

type GrantQueries interface {
	CreateConfirmedGrant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateConfirmedGrantParams) (sqlc.OperatorConfirmedGrants, error)
}

type GrantRepository struct {
	queries GrantQueries
}

func NewGrantRepository(queries GrantQueries) *GrantRepository {
	return &GrantRepository{
		queries: queries,
	}
}

func (r *GrantRepository) Create(ctx context.Context, db sqlc.DBTX, g *company.ConfirmedGrant) (*queries.GrantView, error) {
	params, err := converter.GrantToInfra(g)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert grant amount", err)
	}

	row, err := r.queries.CreateConfirmedGrant(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to confirm grant", err)
	}

	view, err := converter.GrantViewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert grant row", err)
	}
	return view, nil
}
