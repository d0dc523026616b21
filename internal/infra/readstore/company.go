package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/infra/repository/converter"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
)

type CompanyReadQueries interface {
	FindCompanyWithContactByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.FindCompanyWithContactByUserIDRow, error)
	FindCompanyByINN(ctx context.Context, db sqlc.DBTX, inn string) (sqlc.FindCompanyByINNRow, error)
	ListCompanies(ctx context.Context, db sqlc.DBTX) ([]sqlc.Companies, error)
	ListCompaniesByRegion(ctx context.Context, db sqlc.DBTX, region pgtype.Text) ([]sqlc.Companies, error)
}

type CompanyReadStore struct {
	queries CompanyReadQueries
	db      sqlc.DBTX
}

func NewCompanyReadStore(queries CompanyReadQueries, db sqlc.DBTX) *CompanyReadStore {
	return &CompanyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CompanyReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.CompanyView, error) {
	row, err := r.queries.FindCompanyWithContactByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find company by user", err)
	}
	return converter.CompanyWithContactFromRow(row), nil
}

func (r *CompanyReadStore) FindByINN(ctx context.Context, inn string) (*queries.CompanyRefView, error) {
	row, err := r.queries.FindCompanyByINN(ctx, r.db, inn)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find company by inn", err)
	}
	return &queries.CompanyRefView{ID: row.ID, Name: row.Name, INN: row.Inn}, nil
}

func (r *CompanyReadStore) List(ctx context.Context) ([]*queries.CompanyView, error) {
	rows, err := r.queries.ListCompanies(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	return toCompanyViews(rows), nil
}

func (r *CompanyReadStore) ListByRegion(ctx context.Context, region string) ([]*queries.CompanyView, error) {
	rows, err := r.queries.ListCompaniesByRegion(ctx, r.db, pgconv.StringPtrToPgtype(&region))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies by region", err)
	}
	return toCompanyViews(rows), nil
}

func toCompanyViews(rows []sqlc.Companies) []*queries.CompanyView {
	views := make([]*queries.CompanyView, 0, len(rows))
	for _, row := range rows {
		views = append(views, converter.CompanyViewFromRow(row))
	}
	return views
}
