package converter

import (
	"supplier-marketplace/internal/domain/company"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
)

func SurveyToInfra(a company.SurveyAnswer) sqlc.UpsertSurveyAnswerParams {
	return sqlc.UpsertSurveyAnswerParams{
		CompanyID:             a.CompanyID,
		IsAware:               pgconv.BoolPtrToPgtype(a.IsAware),
		MainInterest:          a.MainInterest,
		UsedFederal:           a.UsedFederal,
		UsedRegional:          a.UsedRegional,
		StartupPlans:          pgconv.StringPtrToPgtype(a.StartupPlans),
		AttractingSpecialists: pgconv.BoolPtrToPgtype(a.AttractingSpecialists),
	}
}

func SurveyViewFromRow(row sqlc.SurveySupportAnswers) *queries.SurveyView {
	return &queries.SurveyView{
		CompanyID:             row.CompanyID,
		IsAware:               pgconv.BoolPtrFromPgtype(row.IsAware),
		MainInterest:          nonNil(row.MainInterest),
		UsedFederal:           nonNil(row.UsedFederal),
		UsedRegional:          nonNil(row.UsedRegional),
		StartupPlans:          pgconv.StringPtrFromPgtype(row.StartupPlans),
		AttractingSpecialists: pgconv.BoolPtrFromPgtype(row.AttractingSpecialists),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func GrantToInfra(g *company.ConfirmedGrant) (sqlc.CreateConfirmedGrantParams, error) {
	m := g.Measure()
	amount, err := pgconv.Float64ToNumeric(m.GrantAmount)
	if err != nil {
		return sqlc.CreateConfirmedGrantParams{}, err
	}

	return sqlc.CreateConfirmedGrantParams{
		ID:                    g.ID(),
		CompanyID:             g.CompanyID(),
		MeasureType:           m.MeasureType,
		Description:           m.Description,
		GrantYear:             m.GrantYear,
		GrantAmount:           amount,
		ConfirmedByOperatorID: g.ConfirmedBy(),
		ConfirmedAt:           pgconv.TimeToPgtype(g.ConfirmedAt()),
	}, nil
}

func GrantViewFromRow(row sqlc.OperatorConfirmedGrants) (*queries.GrantView, error) {
	amount, err := pgconv.Float64FromNumeric(row.GrantAmount)
	if err != nil {
		return nil, err
	}

	return &queries.GrantView{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		MeasureType: row.MeasureType,
		Description: row.Description,
		GrantYear:   row.GrantYear,
		GrantAmount: amount,
		ConfirmedBy: row.ConfirmedByOperatorID,
		ConfirmedAt: pgconv.TimeFromPgtype(row.ConfirmedAt),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
