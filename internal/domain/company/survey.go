package company

import "github.com/google/uuid"

// SurveyAnswer is the support-measures questionnaire. Only its shape is checked.
type SurveyAnswer struct {
	CompanyID             uuid.UUID
	IsAware               *bool
	MainInterest          []string
	UsedFederal           []string
	UsedRegional          []string
	StartupPlans          *string
	AttractingSpecialists *bool
}

func NewSurveyAnswer(companyID uuid.UUID, a SurveyAnswer) (SurveyAnswer, error) {
	if companyID == uuid.Nil {
		return SurveyAnswer{}, ErrMissingCompany
	}
	a.CompanyID = companyID
	a.MainInterest = nonNil(a.MainInterest)
	a.UsedFederal = nonNil(a.UsedFederal)
	a.UsedRegional = nonNil(a.UsedRegional)
	a.StartupPlans = blankToNil(a.StartupPlans)
	return a, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
