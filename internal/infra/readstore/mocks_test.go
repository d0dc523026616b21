//go:build unit

package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"

	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
)

type MockReadQueries struct {
	mock.Mock
}

func (m *MockReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func (m *MockReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockReadQueries) FindCompanyWithContactByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.FindCompanyWithContactByUserIDRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(sqlc.FindCompanyWithContactByUserIDRow), args.Error(1)
}

func (m *MockReadQueries) FindCompanyByINN(ctx context.Context, db sqlc.DBTX, inn string) (sqlc.FindCompanyByINNRow, error) {
	args := m.Called(ctx, db, inn)
	return args.Get(0).(sqlc.FindCompanyByINNRow), args.Error(1)
}

func (m *MockReadQueries) ListCompanies(ctx context.Context, db sqlc.DBTX) ([]sqlc.Companies, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Companies), args.Error(1)
}

func (m *MockReadQueries) ListCompaniesByRegion(ctx context.Context, db sqlc.DBTX, region pgtype.Text) ([]sqlc.Companies, error) {
	args := m.Called(ctx, db, region)
	return args.Get(0).([]sqlc.Companies), args.Error(1)
}

func (m *MockReadQueries) ListGrantsByCompany(ctx context.Context, db sqlc.DBTX, companyID uuid.UUID) ([]sqlc.OperatorConfirmedGrants, error) {
	args := m.Called(ctx, db, companyID)
	return args.Get(0).([]sqlc.OperatorConfirmedGrants), args.Error(1)
}

func (m *MockReadQueries) GetRegistryStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRegistryStatsParams) (sqlc.GetRegistryStatsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetRegistryStatsRow), args.Error(1)
}

func (m *MockReadQueries) CountAwareCompanies(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReadQueries) TopInterests(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.TopInterestsRow, error) {
	args := m.Called(ctx, db, limit)
	return args.Get(0).([]sqlc.TopInterestsRow), args.Error(1)
}

func (m *MockReadQueries) ConfirmedGrantsByDescription(ctx context.Context, db sqlc.DBTX) ([]sqlc.ConfirmedGrantsByDescriptionRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ConfirmedGrantsByDescriptionRow), args.Error(1)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
