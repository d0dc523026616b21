package registration

import (
	"context"

	"github.com/google/uuid"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/queries"
)

// CredentialStore is the users service as seen by the saga. commands.AuthCommands satisfies it
// in-process; client.UsersClient satisfies it over HTTP.
type CredentialStore interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*commands.LoginResult, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CompanyRegistry is the companies service as seen by the saga. OwnCompany authenticates with a
// token from CredentialStore.Login.
type CompanyRegistry interface {
	CreateCompany(ctx context.Context, req reqdto.CreateCompanyRequest) (*queries.CompanyView, error)
	OwnCompany(ctx context.Context, token string) (*queries.CompanyView, error)
	SaveSurvey(ctx context.Context, companyID uuid.UUID, req reqdto.SurveyRequest) (*queries.SurveyView, error)
}
