package repository

import (
	"context"
	"time"

	"supplier-marketplace/internal/domain/company"
	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/infra/repository/converter"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
)

type SurveyQueries interface {
	UpsertSurveyAnswer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSurveyAnswerParams) (sqlc.SurveySupportAnswers, error)
}

type SurveyRepository struct {
	queries SurveyQueries
}

func NewSurveyRepository(queries SurveyQueries) *SurveyRepository {
	return &SurveyRepository{
		queries: queries,
	}
}

// Upsert replaces any earlier answers of the same company.
func (r *SurveyRepository) Upsert(ctx context.Context, db sqlc.DBTX, a company.SurveyAnswer, now time.Time) (*queries.SurveyView, error) {
	params := converter.SurveyToInfra(a)
	params.UpdatedAt = pgconv.TimeToPgtype(now)

	row, err := r.queries.UpsertSurveyAnswer(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save survey answers", err)
	}
	return converter.SurveyViewFromRow(row), nil
}
