package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/pkg/errs"
)

var (
	ErrCompanyNotFound = errs.Mark(errs.New("company not found"), errs.ErrNotFound)
	ErrRegionRequired  = errs.Mark(errs.New("region name is required"), errs.ErrInvalidInput)
)

type CompanyReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*CompanyView, error)
	FindByINN(ctx context.Context, inn string) (*CompanyRefView, error)
	List(ctx context.Context) ([]*CompanyView, error)
	ListByRegion(ctx context.Context, region string) ([]*CompanyView, error)
}

type CompanyQueries interface {
	GetOwnCompany(ctx context.Context, userID uuid.UUID) (*CompanyView, error)
	ListCompanies(ctx context.Context) ([]*CompanyView, error)
	ListCompaniesByRegion(ctx context.Context, region string) ([]*CompanyView, error)
}

type companyQueriesImpl struct {
	readStore CompanyReadStore
}

func NewCompanyQueries(readStore CompanyReadStore) CompanyQueries {
	return &companyQueriesImpl{
		readStore: readStore,
	}
}

func (q *companyQueriesImpl) GetOwnCompany(ctx context.Context, userID uuid.UUID) (*CompanyView, error) {
	company, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (q *companyQueriesImpl) ListCompanies(ctx context.Context) ([]*CompanyView, error) {
	return q.readStore.List(ctx)
}

func (q *companyQueriesImpl) ListCompaniesByRegion(ctx context.Context, region string) ([]*CompanyView, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil, ErrRegionRequired
	}
	return q.readStore.ListByRegion(ctx, region)
}
