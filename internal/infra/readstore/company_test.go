//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/infra"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
	"supplier-marketplace/tests/common/builder"
)

func withContactRow(c sqlc.Companies) sqlc.FindCompanyWithContactByUserIDRow {
	return sqlc.FindCompanyWithContactByUserIDRow{
		ID:                c.ID,
		UserID:            c.UserID,
		Name:              c.Name,
		FullName:          c.FullName,
		Inn:               c.Inn,
		Region:            c.Region,
		Description:       c.Description,
		FoundationYear:    c.FoundationYear,
		WebsiteUrl:        c.WebsiteUrl,
		LogoUrl:           c.LogoUrl,
		ItAssociations:    c.ItAssociations,
		NotifyOnNewOrders: c.NotifyOnNewOrders,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func TestCompanyReadStore_FindByUserID(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	b := builder.NewCompanyBuilder()
	base := b.BuildInfra()

	t.Run("without contact", func(t *testing.T) {
		mockQueries := new(MockReadQueries)
		mockQueries.On("FindCompanyWithContactByUserID", ctx, db, base.UserID).Return(withContactRow(base), nil)

		view, err := NewCompanyReadStore(mockQueries, db).FindByUserID(ctx, base.UserID)
		require.NoError(t, err)

		if diff := cmp.Diff(b.BuildReadModel(), view); diff != "" {
			t.Errorf("CompanyView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("with contact", func(t *testing.T) {
		row := withContactRow(base)
		row.ContactPhone = pgtype.Text{String: "+7 831", Valid: true}

		mockQueries := new(MockReadQueries)
		mockQueries.On("FindCompanyWithContactByUserID", ctx, db, base.UserID).Return(row, nil)

		view, err := NewCompanyReadStore(mockQueries, db).FindByUserID(ctx, base.UserID)
		require.NoError(t, err)
		require.NotNil(t, view.Contact)
		phone := "+7 831"
		assert.Equal(t, &queries.ContactView{Phone: &phone}, view.Contact)
	})

	t.Run("not found", func(t *testing.T) {
		userID := uuid.New()
		mockQueries := new(MockReadQueries)
		mockQueries.On("FindCompanyWithContactByUserID", ctx, db, userID).
			Return(sqlc.FindCompanyWithContactByUserIDRow{}, pgx.ErrNoRows)

		_, err := NewCompanyReadStore(mockQueries, db).FindByUserID(ctx, userID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCompanyReadStore_FindByINN(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	id := uuid.New()

	mockQueries := new(MockReadQueries)
	mockQueries.On("FindCompanyByINN", ctx, db, "5201").Return(sqlc.FindCompanyByINNRow{ID: id, Name: "Acme", Inn: "5201"}, nil)
	mockQueries.On("FindCompanyByINN", ctx, db, "7700").Return(sqlc.FindCompanyByINNRow{}, pgx.ErrNoRows)

	store := NewCompanyReadStore(mockQueries, db)

	ref, err := store.FindByINN(ctx, "5201")
	require.NoError(t, err)
	assert.Equal(t, &queries.CompanyRefView{ID: id, Name: "Acme", INN: "5201"}, ref)

	_, err = store.FindByINN(ctx, "7700")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCompanyReadStore_List(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	rows := []sqlc.Companies{
		builder.NewCompanyBuilder().WithName("Alpha").BuildInfra(),
		builder.NewCompanyBuilder().WithName("Beta").BuildInfra(),
	}

	mockQueries := new(MockReadQueries)
	mockQueries.On("ListCompanies", ctx, db).Return(rows, nil)
	mockQueries.On("ListCompaniesByRegion", ctx, db, pgtype.Text{String: "Москва", Valid: true}).Return([]sqlc.Companies(nil), nil)

	store := NewCompanyReadStore(mockQueries, db)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Name)

	none, err := store.ListByRegion(ctx, "Москва")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGrantReadStore_ListByCompany(t *testing.T) {
	ctx := context.Background()
	db := &mockDBTX{}
	companyID := uuid.New()
	amount, err := pgconv.Float64ToNumeric(250000)
	require.NoError(t, err)
	newer := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	mockQueries := new(MockReadQueries)
	mockQueries.On("ListGrantsByCompany", ctx, db, companyID).Return([]sqlc.OperatorConfirmedGrants{
		{ID: uuid.New(), CompanyID: companyID, Description: "b", GrantYear: 2025, GrantAmount: amount, ConfirmedAt: pgconv.TimeToPgtype(newer)},
		{ID: uuid.New(), CompanyID: companyID, Description: "a", GrantYear: 2024, GrantAmount: amount, ConfirmedAt: pgconv.TimeToPgtype(older)},
	}, nil)

	views, err := NewGrantReadStore(mockQueries, db).ListByCompany(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer, views[0].ConfirmedAt)
	assert.InDelta(t, 250000.0, views[1].GrantAmount, 1e-9)
}
