package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView is the public part of a credential. The password hash never leaves the read store
// except through FindByEmail.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactView struct {
	FullName *string `json:"full_name"`
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

// CompanyView is a company row, with its contact when one has been saved.
type CompanyView struct {
	ID                uuid.UUID    `json:"id"`
	UserID            uuid.UUID    `json:"user_id"`
	Name              string       `json:"name"`
	FullName          *string      `json:"full_name"`
	INN               string       `json:"inn"`
	Region            *string      `json:"region"`
	Description       *string      `json:"description"`
	FoundationYear    *int32       `json:"foundation_year"`
	WebsiteURL        *string      `json:"website_url"`
	LogoURL           *string      `json:"logo_url"`
	ITAssociations    *string      `json:"it_associations"`
	NotifyOnNewOrders bool         `json:"notify_on_new_orders"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
	Contact           *ContactView `json:"contact,omitempty"`
}

type CompanyRefView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	INN  string    `json:"inn"`
}

type SurveyView struct {
	CompanyID             uuid.UUID `json:"company_id"`
	IsAware               *bool     `json:"is_aware"`
	MainInterest          []string  `json:"main_interest"`
	UsedFederal           []string  `json:"used_federal"`
	UsedRegional          []string  `json:"used_regional"`
	StartupPlans          *string   `json:"startup_plans"`
	AttractingSpecialists *bool     `json:"attracting_specialists"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type GrantView struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	MeasureType string    `json:"measure_type"`
	Description string    `json:"description"`
	GrantYear   int32     `json:"grant_year"`
	GrantAmount float64   `json:"grant_amount"`
	ConfirmedBy uuid.UUID `json:"confirmed_by_operator_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type RegistryStatsView struct {
	TotalCompanies     int64
	RegionCompanies    int64
	NewTotalCompanies  int64
	NewRegionCompanies int64
}

type InterestCount struct {
	Interest string
	Count    int64
}

type GrantDescriptionCount struct {
	Description  string
	CompanyCount int64
}

type SupportStatsView struct {
	CompaniesAwareCount  int64
	TopInterests         []InterestCount
	ConfirmedGrantsStats []GrantDescriptionCount
}
