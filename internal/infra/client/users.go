package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/user"
	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase/commands"
	"supplier-marketplace/internal/usecase/queries"
)

type UsersClient struct {
	baseClient
	tokenTTL time.Duration
	clock    clock.Clock
}

// NewUsersClient talks to the users service at baseURL. Token expiry is estimated from clk and
// tokenTTL since the login response does not carry it.
func NewUsersClient(baseURL string, timeout, tokenTTL time.Duration, clk clock.Clock, httpClient *http.Client) *UsersClient {
	return &UsersClient{
		baseClient: newBaseClient(baseURL, timeout, httpClient),
		tokenTTL:   tokenTTL,
		clock:      clk,
	}
}

func (c *UsersClient) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
	var res resdto.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/register", req, &res); err != nil {
		return nil, err
	}
	return &queries.UserView{
		ID:        res.User.ID,
		Email:     res.User.Email,
		Role:      res.User.Role,
		CreatedAt: res.User.CreatedAt,
	}, nil
}

func (c *UsersClient) Login(ctx context.Context, req reqdto.LoginRequest) (*commands.LoginResult, error) {
	var res resdto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &res); err != nil {
		return nil, err
	}
	role, err := user.NewRole(res.User.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "users service returned role %q", res.User.Role)
	}
	return &commands.LoginResult{
		Token:     res.Token,
		UserID:    res.User.ID,
		Role:      role,
		ExpiresAt: c.clock.Now().Add(c.tokenTTL),
	}, nil
}

func (c *UsersClient) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id.String(), nil, nil)
}
