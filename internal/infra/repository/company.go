package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/company"
	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/infra/repository/converter"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
)

type CompanyQueries interface {
	CreateCompany(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCompanyParams) (sqlc.Companies, error)
	LockCompanyIDByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (uuid.UUID, error)
	UpdateCompanyProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCompanyProfileParams) (sqlc.Companies, error)
}

type CompanyRepository struct {
	queries CompanyQueries
}

func NewCompanyRepository(queries CompanyQueries) *CompanyRepository {
	return &CompanyRepository{
		queries: queries,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, db sqlc.DBTX, c *company.Company) (*queries.CompanyView, error) {
	row, err := r.queries.CreateCompany(ctx, db, converter.CompanyToInfra(c))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create company", err)
	}
	return converter.CompanyViewFromRow(row), nil
}

// LockIDByUserID takes a row lock on the caller's company for the rest of the transaction.
func (r *CompanyRepository) LockIDByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (uuid.UUID, error) {
	id, err := r.queries.LockCompanyIDByUserID(ctx, db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to lock company", err)
	}
	return id, nil
}

func (r *CompanyRepository) UpdateProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID, p company.Profile, now time.Time) (*queries.CompanyView, error) {
	params := converter.ProfileToInfra(id, p)
	params.UpdatedAt = pgconv.TimeToPgtype(now)

	row, err := r.queries.UpdateCompanyProfile(ctx, db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update company profile", err)
	}
	return converter.CompanyViewFromRow(row), nil
}
