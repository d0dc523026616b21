package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/auth"
	"supplier-marketplace/internal/domain/user"
	reqdto "supplier-marketplace/internal/handler/dto/request"
	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/pkg/password"
	"supplier-marketplace/internal/usecase/queries"
	"supplier-marketplace/internal/usecase/shared"
)

var (
	ErrEmailTaken         = errs.Mark(errs.New("User with this email already exists"), errs.ErrConflict)
	ErrInvalidCredentials = errs.Mark(errs.New("Invalid credentials"), errs.ErrUnauthorized)
	ErrUserNotFound       = errs.Mark(errs.New("User not found"), errs.ErrNotFound)
	ErrUserReferenced     = errs.Mark(errs.New("User is referenced by confirmed grants"), errs.ErrConflict)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type LoginResult struct {
	Token     string
	UserID    uuid.UUID
	Role      user.Role
	ExpiresAt time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	clock     clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		clock:     clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
	email, pw, role, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		if errs.Is(err, password.ErrTooLong) {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		return nil, errs.Wrap(err, "hash password")
	}

	newUser := user.NewUser(email, hash, role, a.clock.Now())

	var created *queries.UserView
	err = a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		created, createErr = tx.Users().Create(ctx, tx.DB(), newUser)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return created, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	view, err := a.validateUser(ctx, creds)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored role %q", view.Role)
	}

	token, err := a.tokens.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		UserID:    view.ID,
		Role:      role,
		ExpiresAt: a.clock.Now().Add(a.tokens.TokenDuration()),
	}, nil
}

// DeleteUser is the compensating action of a failed registration.
func (a *authCommandsImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrUserNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrUserReferenced
		}
		return err
	}
	return nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, creds auth.Credentials) (*queries.UserView, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, creds.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so callers cannot enumerate accounts.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
