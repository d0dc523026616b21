package converter

import (
	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/company"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
)

func CompanyToInfra(c *company.Company) sqlc.CreateCompanyParams {
	return sqlc.CreateCompanyParams{
		ID:        c.ID(),
		UserID:    c.UserID(),
		Name:      c.Name(),
		FullName:  pgconv.StringPtrToPgtype(c.FullName()),
		Inn:       c.INN().Value(),
		Region:    pgconv.StringPtrToPgtype(c.Region()),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func ProfileToInfra(id uuid.UUID, p company.Profile) sqlc.UpdateCompanyProfileParams {
	return sqlc.UpdateCompanyProfileParams{
		ID:                id,
		Name:              p.Name,
		FullName:          pgconv.StringPtrToPgtype(p.FullName),
		FoundationYear:    pgconv.Int32PtrToPgtype(p.FoundationYear),
		Region:            pgconv.StringPtrToPgtype(p.Region),
		Description:       pgconv.StringPtrToPgtype(p.Description),
		NotifyOnNewOrders: p.NotifyOnNewOrders,
		WebsiteUrl:        pgconv.StringPtrToPgtype(p.WebsiteURL),
		ItAssociations:    pgconv.StringPtrToPgtype(p.ITAssociations),
		LogoUrl:           pgconv.StringPtrToPgtype(p.LogoURL),
	}
}

func ContactToInfra(companyID uuid.UUID, c company.Contact) sqlc.UpsertCompanyContactParams {
	return sqlc.UpsertCompanyContactParams{
		CompanyID: companyID,
		FullName:  pgconv.StringPtrToPgtype(c.FullName),
		Position:  pgconv.StringPtrToPgtype(c.Position),
		Phone:     pgconv.StringPtrToPgtype(c.Phone),
		Email:     pgconv.StringPtrToPgtype(c.Email),
	}
}

func CompanyViewFromRow(row sqlc.Companies) *queries.CompanyView {
	return &queries.CompanyView{
		ID:                row.ID,
		UserID:            row.UserID,
		Name:              row.Name,
		FullName:          pgconv.StringPtrFromPgtype(row.FullName),
		INN:               row.Inn,
		Region:            pgconv.StringPtrFromPgtype(row.Region),
		Description:       pgconv.StringPtrFromPgtype(row.Description),
		FoundationYear:    pgconv.Int32PtrFromPgtype(row.FoundationYear),
		WebsiteURL:        pgconv.StringPtrFromPgtype(row.WebsiteUrl),
		LogoURL:           pgconv.StringPtrFromPgtype(row.LogoUrl),
		ITAssociations:    pgconv.StringPtrFromPgtype(row.ItAssociations),
		NotifyOnNewOrders: row.NotifyOnNewOrders,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

// CompanyWithContactFromRow leaves Contact nil when the LEFT JOIN found no contact row.
func CompanyWithContactFromRow(row sqlc.FindCompanyWithContactByUserIDRow) *queries.CompanyView {
	view := CompanyViewFromRow(sqlc.Companies{
		ID:                row.ID,
		UserID:            row.UserID,
		Name:              row.Name,
		FullName:          row.FullName,
		Inn:               row.Inn,
		Region:            row.Region,
		Description:       row.Description,
		FoundationYear:    row.FoundationYear,
		WebsiteUrl:        row.WebsiteUrl,
		LogoUrl:           row.LogoUrl,
		ItAssociations:    row.ItAssociations,
		NotifyOnNewOrders: row.NotifyOnNewOrders,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	})

	if row.ContactFullName.Valid || row.ContactPosition.Valid || row.ContactPhone.Valid || row.ContactEmail.Valid {
		view.Contact = &queries.ContactView{
			FullName: pgconv.StringPtrFromPgtype(row.ContactFullName),
			Position: pgconv.StringPtrFromPgtype(row.ContactPosition),
			Phone:    pgconv.StringPtrFromPgtype(row.ContactPhone),
			Email:    pgconv.StringPtrFromPgtype(row.ContactEmail),
		}
	}
	return view
}

func ContactViewFromRow(row sqlc.CompanyContacts) *queries.ContactView {
	return &queries.ContactView{
		FullName: pgconv.StringPtrFromPgtype(row.FullName),
		Position: pgconv.StringPtrFromPgtype(row.Position),
		Phone:    pgconv.StringPtrFromPgtype(row.Phone),
		Email:    pgconv.StringPtrFromPgtype(row.Email),
	}
}
