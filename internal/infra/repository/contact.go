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

type ContactQueries interface {
	UpsertCompanyContact(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCompanyContactParams) (sqlc.CompanyContacts, error)
}

type ContactRepository struct {
	queries ContactQueries
}

func NewContactRepository(queries ContactQueries) *ContactRepository {
	return &ContactRepository{
		queries: queries,
	}
}

func (r *ContactRepository) Upsert(ctx context.Context, db sqlc.DBTX, companyID uuid.UUID, c company.Contact, now time.Time) (*queries.ContactView, error) {
	params := converter.ContactToInfra(companyID, c)
	params.UpdatedAt = pgconv.TimeToPgtype(now)

	row, err := r.queries.UpsertCompanyContact(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save company contact", err)
	}
	return converter.ContactViewFromRow(row), nil
}
