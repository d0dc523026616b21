//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"supplier-marketplace/internal/domain/company"
	reqdto "supplier-marketplace/internal/handler/dto/request"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/usecase/queries"
)

type CompanyBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	FullName  *string
	INN       string
	Region    *string
	CreatedAt time.Time
}

func NewCompanyBuilder() *CompanyBuilder {
	region := "Нижегородская область"
	return &CompanyBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Компания 5201",
		INN:       "5201",
		Region:    &region,
		CreatedAt: fixedNow,
	}
}

func (c *CompanyBuilder) With(mutate func(*CompanyBuilder)) *CompanyBuilder {
	mutate(c)
	return c
}

func (c *CompanyBuilder) WithINN(inn string) *CompanyBuilder {
	c.INN = inn
	return c
}

func (c *CompanyBuilder) WithUserID(id uuid.UUID) *CompanyBuilder {
	c.UserID = id
	return c
}

func (c *CompanyBuilder) WithName(name string) *CompanyBuilder {
	c.Name = name
	return c
}

func (c *CompanyBuilder) BuildDomain() (*company.Company, error) {
	inn, err := company.NewINN(c.INN)
	if err != nil {
		return nil, err
	}
	return company.NewCompany(c.UserID, c.Name, inn, c.FullName, c.Region, c.CreatedAt)
}

func (c *CompanyBuilder) BuildInfra() sqlc.Companies {
	ts := pgtype.Timestamptz{Time: c.CreatedAt, Valid: true}
	row := sqlc.Companies{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Inn:       c.INN,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if c.FullName != nil {
		row.FullName = pgtype.Text{String: *c.FullName, Valid: true}
	}
	if c.Region != nil {
		row.Region = pgtype.Text{String: *c.Region, Valid: true}
	}
	return row
}

func (c *CompanyBuilder) BuildReadModel() *queries.CompanyView {
	return &queries.CompanyView{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		FullName:  c.FullName,
		INN:       c.INN,
		Region:    c.Region,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.CreatedAt,
	}
}

// NewProfile returns a valid full profile update.
func NewProfile() company.Profile {
	year := int32(2015)
	site := "https://acme.example"
	fullName := "ООО Акме"
	phone := "+7 831 000-00-00"
	return company.Profile{
		Name:              "Acme",
		FullName:          &fullName,
		FoundationYear:    &year,
		WebsiteURL:        &site,
		NotifyOnNewOrders: true,
		Contact: company.Contact{
			Phone: &phone,
		},
	}
}

func NewMeasure() company.Measure {
	return company.Measure{
		MeasureType: "grant",
		Description: "Региональный грант",
		GrantYear:   2024,
		GrantAmount: 1500000,
	}
}

func (c *CompanyBuilder) BuildDTO() reqdto.CreateCompanyRequest {
	return reqdto.CreateCompanyRequest{
		UserID:   c.UserID.String(),
		Name:     c.Name,
		INN:      c.INN,
		FullName: c.FullName,
		Region:   c.Region,
	}
}

// NewUpdateDTO is NewProfile as the request body the profile endpoint accepts.
func NewUpdateDTO() reqdto.UpdateCompanyRequest {
	p := NewProfile()
	return reqdto.UpdateCompanyRequest{
		Name:              p.Name,
		FullName:          p.FullName,
		FoundationYear:    p.FoundationYear,
		WebsiteURL:        p.WebsiteURL,
		NotifyOnNewOrders: p.NotifyOnNewOrders,
		ContactPhone:      p.Contact.Phone,
	}
}

func NewConfirmDTO(companyID uuid.UUID) reqdto.ConfirmSupportRequest {
	m := NewMeasure()
	return reqdto.ConfirmSupportRequest{
		CompanyID: companyID.String(),
		Measure: &reqdto.MeasureRequest{
			MeasureType: m.MeasureType,
			Description: m.Description,
			GrantYear:   reqdto.Int32(m.GrantYear),
			GrantAmount: reqdto.Float64(m.GrantAmount),
		},
	}
}

func NewSurveyDTO() reqdto.SurveyRequest {
	aware := true
	return reqdto.SurveyRequest{
		IsAware:      &aware,
		MainInterest: []string{"Гранты", "Льготные займы"},
		UsedFederal:  []string{},
		UsedRegional: []string{"Региональный грант"},
	}
}
