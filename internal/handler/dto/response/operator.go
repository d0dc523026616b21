package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"supplier-marketplace/internal/usecase/queries"
)

// RegistryStatsResponse keeps the dashboard's nn* keys for the region counts.
type RegistryStatsResponse struct {
	TotalCompanies     int64 `json:"totalCompanies"`
	RegionCompanies    int64 `json:"nnCompanies"`
	NewTotalCompanies  int64 `json:"newTotalCompanies"`
	NewRegionCompanies int64 `json:"newNnCompanies"`
}

type InterestCountResponse struct {
	Interest string `json:"interest"`
	Count    int64  `json:"count"`
}

type GrantDescriptionCountResponse struct {
	Description  string `json:"description"`
	CompanyCount int64  `json:"companyCount"`
}

type SupportStatsResponse struct {
	CompaniesAwareCount  int64                           `json:"companiesAwareCount"`
	TopInterests         []InterestCountResponse         `json:"topInterests"`
	ConfirmedGrantsStats []GrantDescriptionCountResponse `json:"confirmedGrantsStats"`
}

type CompanyRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	INN  string    `json:"inn"`
}

type GrantResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	MeasureType string    `json:"measure_type"`
	Description string    `json:"description"`
	GrantYear   int32     `json:"grant_year"`
	GrantAmount float64   `json:"grant_amount"`
	ConfirmedBy uuid.UUID `json:"confirmed_by_operator_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type ConfirmSupportResponse struct {
	Message string        `json:"message"`
	Grant   GrantResponse `json:"grant"`
}

func FromRegistryStats(v *queries.RegistryStatsView) RegistryStatsResponse {
	return RegistryStatsResponse{
		TotalCompanies:     v.TotalCompanies,
		RegionCompanies:    v.RegionCompanies,
		NewTotalCompanies:  v.NewTotalCompanies,
		NewRegionCompanies: v.NewRegionCompanies,
	}
}

// FromSupportStats never returns nil slices so empty stats encode as [].
func FromSupportStats(v *queries.SupportStatsView) (*SupportStatsResponse, error) {
	res := &SupportStatsResponse{
		CompaniesAwareCount:  v.CompaniesAwareCount,
		TopInterests:         []InterestCountResponse{},
		ConfirmedGrantsStats: []GrantDescriptionCountResponse{},
	}
	if err := copier.Copy(&res.TopInterests, v.TopInterests); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.ConfirmedGrantsStats, v.ConfirmedGrantsStats); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCompanyRef(v *queries.CompanyRefView) CompanyRefResponse {
	return CompanyRefResponse{ID: v.ID, Name: v.Name, INN: v.INN}
}

func FromGrantView(v *queries.GrantView) GrantResponse {
	return GrantResponse{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		MeasureType: v.MeasureType,
		Description: v.Description,
		GrantYear:   v.GrantYear,
		GrantAmount: v.GrantAmount,
		ConfirmedBy: v.ConfirmedBy,
		ConfirmedAt: v.ConfirmedAt,
	}
}

func FromGrantList(items []*queries.GrantView) []GrantResponse {
	res := make([]GrantResponse, len(items))
	for i, it := range items {
		res[i] = FromGrantView(it)
	}
	return res
}
