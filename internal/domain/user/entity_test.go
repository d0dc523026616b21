//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/tests/common/builder"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("supplier@example.com")
		expected := user.NewUser(email, "hashed_password", user.RoleSupplier, actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleSupplier, actual.Role())
		assert.Equal(t, "supplier@example.com", actual.Email().Value())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("a@x.com") },
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  a@x.com ") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "display name form",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Bob <bob@x.com>") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "domain without dot",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("bob@localhost") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "longer than deliverable",
				mutate: func(b *builder.UserBuilder) { b.WithEmail(strings.Repeat("a", 250) + "@x.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "supplier",
				mutate: func(b *builder.UserBuilder) { b.WithRole("supplier") },
			},
			{
				name:   "operator",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
			},
			{
				name:   "admin is not a marketplace role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestRoleOwnsCompany(t *testing.T) {
	assert.True(t, user.RoleSupplier.OwnsCompany())
	assert.False(t, user.RoleCustomer.OwnsCompany())
	assert.False(t, user.RoleOperator.OwnsCompany())
	assert.False(t, user.Role("admin").OwnsCompany())
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("")
	require.ErrorIs(t, err, user.ErrEmptyPassword)

	p, err := user.NewPassword("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.Value())
}

func TestNewUserKeepsCreationTime(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	email, err := user.NewEmail("op@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hash", user.RoleOperator, now)
	assert.Equal(t, now, u.CreatedAt())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
