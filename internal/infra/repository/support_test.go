//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/domain/company"
	"supplier-marketplace/internal/infra"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/tests/common/builder"
)

func TestSurveyRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	companyID := uuid.New()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	aware := true

	answers, err := company.NewSurveyAnswer(companyID, company.SurveyAnswer{
		IsAware:      &aware,
		MainInterest: []string{"grants", "tax"},
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockWriteQueries)
		mockQueries.On("UpsertSurveyAnswer", ctx, db, mock.MatchedBy(func(p sqlc.UpsertSurveyAnswerParams) bool {
			return p.CompanyID == companyID &&
				p.IsAware.Valid && p.IsAware.Bool &&
				len(p.MainInterest) == 2 &&
				p.UsedFederal != nil &&
				p.UpdatedAt.Time.Equal(now)
		})).Return(sqlc.SurveySupportAnswers{
			CompanyID:    companyID,
			IsAware:      pgconv.BoolPtrToPgtype(&aware),
			MainInterest: []string{"grants", "tax"},
			UpdatedAt:    pgconv.TimeToPgtype(now),
		}, nil)

		view, err := NewSurveyRepository(mockQueries).Upsert(ctx, db, answers, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"grants", "tax"}, view.MainInterest)
		assert.Equal(t, []string{}, view.UsedFederal)
		mockQueries.AssertExpectations(t)
	})

	t.Run("unknown company", func(t *testing.T) {
		mockQueries := new(MockWriteQueries)
		mockQueries.On("UpsertSurveyAnswer", ctx, db, mock.Anything).
			Return(sqlc.SurveySupportAnswers{}, &pgconn.PgError{Code: "23503"})

		_, err := NewSurveyRepository(mockQueries).Upsert(ctx, db, answers, now)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestGrantRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	companyID := uuid.New()
	operatorID := uuid.New()

	grant, err := company.NewConfirmedGrant(companyID, builder.NewMeasure(), operatorID, now)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		amount, err := pgconv.Float64ToNumeric(1500000)
		require.NoError(t, err)

		mockQueries := new(MockWriteQueries)
		mockQueries.On("CreateConfirmedGrant", ctx, db, mock.MatchedBy(func(p sqlc.CreateConfirmedGrantParams) bool {
			return p.ID == grant.ID() &&
				p.CompanyID == companyID &&
				p.ConfirmedByOperatorID == operatorID &&
				p.GrantYear == 2024 &&
				p.ConfirmedAt.Time.Equal(now)
		})).Return(sqlc.OperatorConfirmedGrants{
			ID:                    grant.ID(),
			CompanyID:             companyID,
			MeasureType:           "grant",
			Description:           "Региональный грант",
			GrantYear:             2024,
			GrantAmount:           amount,
			ConfirmedByOperatorID: operatorID,
			ConfirmedAt:           pgconv.TimeToPgtype(now),
		}, nil)

		view, err := NewGrantRepository(mockQueries).Create(ctx, db, grant)
		require.NoError(t, err)
		assert.InDelta(t, 1500000.0, view.GrantAmount, 1e-9)
		assert.Equal(t, operatorID, view.ConfirmedBy)
		mockQueries.AssertExpectations(t)
	})

	t.Run("unknown company", func(t *testing.T) {
		mockQueries := new(MockWriteQueries)
		mockQueries.On("CreateConfirmedGrant", ctx, db, mock.Anything).
			Return(sqlc.OperatorConfirmedGrants{}, &pgconn.PgError{Code: "23503", ConstraintName: "operator_confirmed_grants_company_id_fkey"})

		_, err := NewGrantRepository(mockQueries).Create(ctx, db, grant)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}
