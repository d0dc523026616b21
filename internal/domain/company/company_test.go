//go:build unit

package company_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/domain/company"
)

func strPtr(s string) *string { return &s }

func TestNewINN(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		errIs error
	}{
		{name: "ten digits", in: "7701234567", want: "7701234567"},
		{name: "twelve digits", in: "520123456789", want: "520123456789"},
		{name: "trimmed", in: " 5201234567 ", want: "5201234567"},
		{name: "empty", in: "", errIs: company.ErrInvalidINN},
		{name: "letters", in: "77AB", errIs: company.ErrInvalidINN},
		{name: "signed number", in: "-5201", errIs: company.ErrInvalidINN},
		{name: "non ascii digits", in: "٥٢٠١", errIs: company.ErrInvalidINN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inn, err := company.NewINN(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, inn.Value())
		})
	}
}

func TestRegionRule(t *testing.T) {
	rule := company.NewRegionRule("52", "Нижегородская область")

	regional, _ := company.NewINN("5201234567")
	other, _ := company.NewINN("7701234567")

	assert.True(t, rule.Matches(regional))
	assert.False(t, rule.Matches(other))
	assert.Equal(t, "52%", rule.LikePattern())

	t.Run("empty prefix matches nothing", func(t *testing.T) {
		assert.False(t, company.NewRegionRule("", "").Matches(regional))
	})

	t.Run("like metacharacters are escaped", func(t *testing.T) {
		assert.Equal(t, `5\_%`, company.NewRegionRule("5_", "").LikePattern())
	})
}

func TestNewCompany(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	inn, _ := company.NewINN("7701234567")
	owner := uuid.New()

	t.Run("blank optional fields become nil", func(t *testing.T) {
		c, err := company.NewCompany(owner, " Acme ", inn, strPtr("  "), nil, now)
		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Name())
		assert.Nil(t, c.FullName())
		assert.Nil(t, c.Region())
		assert.Equal(t, owner, c.UserID())
		assert.NotEqual(t, uuid.Nil, c.ID())
	})

	t.Run("name required", func(t *testing.T) {
		_, err := company.NewCompany(owner, "", inn, nil, nil, now)
		require.ErrorIs(t, err, company.ErrEmptyName)
	})

	t.Run("owner required", func(t *testing.T) {
		_, err := company.NewCompany(uuid.Nil, "Acme", inn, nil, nil, now)
		require.ErrorIs(t, err, company.ErrMissingOwner)
	})

	t.Run("default name carries the inn", func(t *testing.T) {
		assert.Equal(t, "Компания 7701234567", company.DefaultName(inn))
	})
}

func TestNewProfile(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	year := func(y int32) *int32 { return &y }

	_, err := company.NewProfile(company.Profile{Name: ""}, now)
	require.ErrorIs(t, err, company.ErrEmptyName)

	_, err = company.NewProfile(company.Profile{Name: "Acme", FoundationYear: year(2030)}, now)
	require.ErrorIs(t, err, company.ErrInvalidFoundingYear)

	p, err := company.NewProfile(company.Profile{Name: "Acme", FoundationYear: year(2010), WebsiteURL: strPtr("")}, now)
	require.NoError(t, err)
	assert.Nil(t, p.WebsiteURL)
	assert.Equal(t, int32(2010), *p.FoundationYear)
}

func TestNewConfirmedGrant(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	companyID := uuid.New()
	operatorID := uuid.New()
	valid := company.Measure{MeasureType: "regional", Description: "Возмещение НДФЛ", GrantYear: 2024, GrantAmount: 150000}

	cases := []struct {
		name   string
		mutate func(m *company.Measure)
		errIs  error
	}{
		{name: "valid", mutate: func(*company.Measure) {}},
		{name: "missing type", mutate: func(m *company.Measure) { m.MeasureType = " " }, errIs: company.ErrMissingMeasureType},
		{name: "missing description", mutate: func(m *company.Measure) { m.Description = "" }, errIs: company.ErrMissingDescription},
		{name: "missing year", mutate: func(m *company.Measure) { m.GrantYear = 0 }, errIs: company.ErrInvalidGrantYear},
		{name: "missing amount", mutate: func(m *company.Measure) { m.GrantAmount = 0 }, errIs: company.ErrInvalidGrantAmount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := valid
			c.mutate(&m)
			g, err := company.NewConfirmedGrant(companyID, m, operatorID, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now, g.ConfirmedAt())
			assert.Equal(t, operatorID, g.ConfirmedBy())
		})
	}

	t.Run("two confirmations are distinct rows", func(t *testing.T) {
		a, err := company.NewConfirmedGrant(companyID, valid, operatorID, now)
		require.NoError(t, err)
		b, err := company.NewConfirmedGrant(companyID, valid, operatorID, now)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestNewSurveyAnswer(t *testing.T) {
	_, err := company.NewSurveyAnswer(uuid.Nil, company.SurveyAnswer{})
	require.ErrorIs(t, err, company.ErrMissingCompany)

	id := uuid.New()
	a, err := company.NewSurveyAnswer(id, company.SurveyAnswer{MainInterest: nil})
	require.NoError(t, err)
	assert.Equal(t, id, a.CompanyID)
	assert.NotNil(t, a.MainInterest)
	assert.Empty(t, a.UsedFederal)
}
