//go:build unit

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
)

// MockWriteQueries covers every write query interface of this package.
type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockWriteQueries) DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) CreateCompany(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCompanyParams) (sqlc.Companies, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Companies), args.Error(1)
}

func (m *MockWriteQueries) LockCompanyIDByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockWriteQueries) UpdateCompanyProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCompanyProfileParams) (sqlc.Companies, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Companies), args.Error(1)
}

func (m *MockWriteQueries) UpsertCompanyContact(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCompanyContactParams) (sqlc.CompanyContacts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.CompanyContacts), args.Error(1)
}

func (m *MockWriteQueries) UpsertSurveyAnswer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSurveyAnswerParams) (sqlc.SurveySupportAnswers, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.SurveySupportAnswers), args.Error(1)
}

func (m *MockWriteQueries) CreateConfirmedGrant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateConfirmedGrantParams) (sqlc.OperatorConfirmedGrants, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.OperatorConfirmedGrants), args.Error(1)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
