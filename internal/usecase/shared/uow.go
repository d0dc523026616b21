package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/company"
	"supplier-marketplace/internal/domain/user"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/usecase/queries"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single statement operations outside an explicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Companies() CompanyRepository
	Contacts() ContactRepository
	Surveys() SurveyRepository
	Grants() GrantRepository
	DB() sqlc.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) (*queries.UserView, error)
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type CompanyRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, c *company.Company) (*queries.CompanyView, error)
	LockIDByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID, p company.Profile, now time.Time) (*queries.CompanyView, error)
}

type ContactRepository interface {
	Upsert(ctx context.Context, db sqlc.DBTX, companyID uuid.UUID, c company.Contact, now time.Time) (*queries.ContactView, error)
}

type SurveyRepository interface {
	Upsert(ctx context.Context, db sqlc.DBTX, a company.SurveyAnswer, now time.Time) (*queries.SurveyView, error)
}

type GrantRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, g *company.ConfirmedGrant) (*queries.GrantView, error)
}
