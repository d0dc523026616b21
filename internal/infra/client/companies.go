package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/usecase/queries"
)

type CompaniesClient struct {
	baseClient
}

func NewCompaniesClient(baseURL string, timeout time.Duration, httpClient *http.Client) *CompaniesClient {
	return &CompaniesClient{baseClient: newBaseClient(baseURL, timeout, httpClient)}
}

func (c *CompaniesClient) CreateCompany(ctx context.Context, req reqdto.CreateCompanyRequest) (*queries.CompanyView, error) {
	var res resdto.CompanyResponse
	if err := c.do(ctx, http.MethodPost, "/companies", req, &res); err != nil {
		return nil, err
	}
	return companyView(res), nil
}

// OwnCompany reads the company of the user token belongs to.
func (c *CompaniesClient) OwnCompany(ctx context.Context, token string) (*queries.CompanyView, error) {
	var res resdto.CompanyResponse
	if err := c.send(ctx, http.MethodGet, "/api/companies/me", token, nil, &res); err != nil {
		return nil, err
	}
	return companyView(res), nil
}

func companyView(res resdto.CompanyResponse) *queries.CompanyView {
	return &queries.CompanyView{
		ID:                res.ID,
		UserID:            res.UserID,
		Name:              res.Name,
		FullName:          res.FullName,
		INN:               res.INN,
		Region:            res.Region,
		Description:       res.Description,
		FoundationYear:    res.FoundationYear,
		WebsiteURL:        res.WebsiteURL,
		LogoURL:           res.LogoURL,
		ITAssociations:    res.ITAssociations,
		NotifyOnNewOrders: res.NotifyOnNewOrders,
		CreatedAt:         res.CreatedAt,
		UpdatedAt:         res.UpdatedAt,
	}
}

func (c *CompaniesClient) SaveSurvey(ctx context.Context, companyID uuid.UUID, req reqdto.SurveyRequest) (*queries.SurveyView, error) {
	var res resdto.SurveyResponse
	if err := c.do(ctx, http.MethodPost, "/companies/"+companyID.String()+"/support-survey", req, &res); err != nil {
		return nil, err
	}
	d := res.Data
	return &queries.SurveyView{
		CompanyID:             d.CompanyID,
		IsAware:               d.IsAware,
		MainInterest:          d.MainInterest,
		UsedFederal:           d.UsedFederal,
		UsedRegional:          d.UsedRegional,
		StartupPlans:          d.StartupPlans,
		AttractingSpecialists: d.AttractingSpecialists,
		UpdatedAt:             d.UpdatedAt,
	}, nil
}
