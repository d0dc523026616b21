package request

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/company"
)

var ErrInvalidID = errors.New("malformed id")

type CreateCompanyRequest struct {
	UserID   string  `json:"user_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	INN      string  `json:"inn" binding:"required"`
	FullName *string `json:"full_name"`
	Region   *string `json:"region"`
}

func (r *CreateCompanyRequest) ToDomain(now time.Time) (*company.Company, error) {
	userID, err := ParseID(r.UserID)
	if err != nil {
		return nil, err
	}
	inn, err := company.NewINN(r.INN)
	if err != nil {
		return nil, err
	}
	return company.NewCompany(userID, r.Name, inn, r.FullName, r.Region, now)
}

// UpdateCompanyRequest replaces the whole profile; omitted fields are cleared.
type UpdateCompanyRequest struct {
	Name              string  `json:"name" binding:"required"`
	FullName          *string `json:"full_name"`
	FoundationYear    *int32  `json:"foundation_year"`
	Region            *string `json:"region"`
	Description       *string `json:"description"`
	NotifyOnNewOrders bool    `json:"notify_on_new_orders"`
	WebsiteURL        *string `json:"website_url"`
	ITAssociations    *string `json:"it_associations"`
	LogoURL           *string `json:"logo_url"`
	ContactFullName   *string `json:"contact_full_name"`
	ContactPosition   *string `json:"contact_position"`
	ContactPhone      *string `json:"contact_phone"`
	ContactEmail      *string `json:"contact_email"`
}

func (r *UpdateCompanyRequest) ToDomain(now time.Time) (company.Profile, error) {
	return company.NewProfile(company.Profile{
		Name:              r.Name,
		FullName:          r.FullName,
		FoundationYear:    r.FoundationYear,
		Region:            r.Region,
		Description:       r.Description,
		NotifyOnNewOrders: r.NotifyOnNewOrders,
		WebsiteURL:        r.WebsiteURL,
		ITAssociations:    r.ITAssociations,
		LogoURL:           r.LogoURL,
		Contact: company.Contact{
			FullName: r.ContactFullName,
			Position: r.ContactPosition,
			Phone:    r.ContactPhone,
			Email:    r.ContactEmail,
		},
	}, now)
}

type SurveyRequest struct {
	IsAware               *bool    `json:"is_aware"`
	MainInterest          []string `json:"main_interest"`
	UsedFederal           []string `json:"used_federal"`
	UsedRegional          []string `json:"used_regional"`
	StartupPlans          *string  `json:"startup_plans"`
	AttractingSpecialists *bool    `json:"attracting_specialists"`
}

func (r *SurveyRequest) ToDomain(companyID uuid.UUID) (company.SurveyAnswer, error) {
	return company.NewSurveyAnswer(companyID, company.SurveyAnswer{
		IsAware:               r.IsAware,
		MainInterest:          r.MainInterest,
		UsedFederal:           r.UsedFederal,
		UsedRegional:          r.UsedRegional,
		StartupPlans:          r.StartupPlans,
		AttractingSpecialists: r.AttractingSpecialists,
	})
}

func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
