package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"supplier-marketplace/internal/usecase/queries"
)

// CompanyResponse is the company row with its contact flattened into contact_* fields.
type CompanyResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Name              string    `json:"name"`
	FullName          *string   `json:"full_name"`
	INN               string    `json:"inn"`
	Region            *string   `json:"region"`
	Description       *string   `json:"description"`
	FoundationYear    *int32    `json:"foundation_year"`
	WebsiteURL        *string   `json:"website_url"`
	LogoURL           *string   `json:"logo_url"`
	ITAssociations    *string   `json:"it_associations"`
	NotifyOnNewOrders bool      `json:"notify_on_new_orders"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	ContactFullName   *string   `json:"contact_full_name"`
	ContactPosition   *string   `json:"contact_position"`
	ContactPhone      *string   `json:"contact_phone"`
	ContactEmail      *string   `json:"contact_email"`
}

func FromCompanyView(v *queries.CompanyView) (*CompanyResponse, error) {
	res := &CompanyResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if v.Contact != nil {
		res.ContactFullName = v.Contact.FullName
		res.ContactPosition = v.Contact.Position
		res.ContactPhone = v.Contact.Phone
		res.ContactEmail = v.Contact.Email
	}
	return res, nil
}

func FromCompanyList(items []*queries.CompanyView) ([]*CompanyResponse, error) {
	res := make([]*CompanyResponse, len(items))
	for i, it := range items {
		c, err := FromCompanyView(it)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

type SurveyData struct {
	CompanyID             uuid.UUID `json:"company_id"`
	IsAware               *bool     `json:"is_aware"`
	MainInterest          []string  `json:"main_interest"`
	UsedFederal           []string  `json:"used_federal"`
	UsedRegional          []string  `json:"used_regional"`
	StartupPlans          *string   `json:"startup_plans"`
	AttractingSpecialists *bool     `json:"attracting_specialists"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type SurveyResponse struct {
	Message string     `json:"message"`
	Data    SurveyData `json:"data"`
}

func FromSurveyView(message string, v *queries.SurveyView) (*SurveyResponse, error) {
	res := &SurveyResponse{Message: message}
	if err := copier.CopyWithOption(&res.Data, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return res, nil
}
