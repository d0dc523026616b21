//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/domain/user"
	reqdto "supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/handler/middleware"
	"supplier-marketplace/internal/infra/client"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/pkg/forwarded"
	"supplier-marketplace/internal/usecase/registration"
)

var (
	_ registration.CredentialStore = (*client.UsersClient)(nil)
	_ registration.CompanyRegistry = (*client.CompaniesClient)(nil)
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestUsersClient(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/register":
			var req reqdto.RegisterRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Email == "taken@x.com" {
				writeJSON(w, http.StatusConflict, resdto.MessageResponse{Message: "User with this email already exists"})
				return
			}
			writeJSON(w, http.StatusCreated, resdto.RegisterResponse{
				Message: "User created successfully",
				User:    resdto.UserResponse{ID: userID, Email: req.Email, Role: req.Role, CreatedAt: created},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/login":
			writeJSON(w, http.StatusOK, resdto.LoginResponse{
				Message: "Logged in successfully",
				Token:   "signed-token",
				User:    resdto.LoginUser{ID: userID, Role: "supplier"},
			})
		case r.Method == http.MethodDelete && r.URL.Path == "/users/"+userID.String():
			writeJSON(w, http.StatusOK, resdto.MessageResponse{Message: "User deleted successfully"})
		case r.Method == http.MethodDelete:
			writeJSON(w, http.StatusNotFound, resdto.MessageResponse{Message: "User not found"})
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	clk := clock.NewMockClock(created)
	c := client.NewUsersClient(srv.URL+"/", time.Second, time.Hour, clk, nil)

	t.Run("register", func(t *testing.T) {
		view, err := c.Register(ctx, reqdto.RegisterRequest{Email: "a@x.com", Password: "p1", Role: "supplier"})
		require.NoError(t, err)
		assert.Equal(t, userID, view.ID)
		assert.Equal(t, "a@x.com", view.Email)
		assert.True(t, created.Equal(view.CreatedAt))
	})

	t.Run("register conflict keeps the message", func(t *testing.T) {
		_, err := c.Register(ctx, reqdto.RegisterRequest{Email: "taken@x.com", Password: "p1", Role: "supplier"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, "User with this email already exists", err.Error())
	})

	t.Run("login", func(t *testing.T) {
		res, err := c.Login(ctx, reqdto.LoginRequest{Email: "a@x.com", Password: "p1"})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", res.Token)
		assert.Equal(t, user.RoleSupplier, res.Role)
		assert.Equal(t, userID, res.UserID)
		assert.Equal(t, created.Add(time.Hour), res.ExpiresAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, c.DeleteUser(ctx, userID))

		err := c.DeleteUser(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestCompaniesClient(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	ownerID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/companies":
			var req reqdto.CreateCompanyRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.INN == "7701234567" {
				writeJSON(w, http.StatusConflict, resdto.MessageResponse{Message: "Company with this INN is already registered"})
				return
			}
			writeJSON(w, http.StatusCreated, resdto.CompanyResponse{ID: companyID, Name: req.Name, INN: req.INN})
		case r.Method == http.MethodGet && r.URL.Path == "/api/companies/me":
			if r.Header.Get("Authorization") != "Bearer owner-token" {
				writeJSON(w, http.StatusUnauthorized, resdto.MessageResponse{Message: "Token not provided"})
				return
			}
			writeJSON(w, http.StatusOK, resdto.CompanyResponse{ID: companyID, UserID: ownerID, Name: "Acme", INN: "5201"})
		case r.Method == http.MethodPost && r.URL.Path == "/companies/"+companyID.String()+"/support-survey":
			writeJSON(w, http.StatusCreated, resdto.SurveyResponse{
				Message: "Survey data saved successfully",
				Data:    resdto.SurveyData{CompanyID: companyID, MainInterest: []string{"Гранты"}},
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := client.NewCompaniesClient(srv.URL, time.Second, nil)

	t.Run("create", func(t *testing.T) {
		view, err := c.CreateCompany(ctx, reqdto.CreateCompanyRequest{UserID: uuid.NewString(), Name: "Acme", INN: "5201"})
		require.NoError(t, err)
		assert.Equal(t, companyID, view.ID)
		assert.Equal(t, "5201", view.INN)
	})

	t.Run("duplicate inn", func(t *testing.T) {
		_, err := c.CreateCompany(ctx, reqdto.CreateCompanyRequest{UserID: uuid.NewString(), Name: "Acme", INN: "7701234567"})
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("own company sends the bearer token", func(t *testing.T) {
		view, err := c.OwnCompany(ctx, "owner-token")
		require.NoError(t, err)
		assert.Equal(t, companyID, view.ID)
		assert.Equal(t, ownerID, view.UserID)

		_, err = c.OwnCompany(ctx, "")
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("survey", func(t *testing.T) {
		view, err := c.SaveSurvey(ctx, companyID, reqdto.SurveyRequest{MainInterest: []string{"Гранты"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Гранты"}, view.MainInterest)
	})

	t.Run("server error without body is unavailable", func(t *testing.T) {
		_, err := c.SaveSurvey(ctx, uuid.New(), reqdto.SurveyRequest{})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDownstreamUnavailable))
	})

	t.Run("unreachable service", func(t *testing.T) {
		dead := client.NewCompaniesClient("http://127.0.0.1:1", 100*time.Millisecond, nil)
		_, err := dead.CreateCompany(ctx, reqdto.CreateCompanyRequest{})
		assert.True(t, errs.Is(err, errs.ErrDownstreamUnavailable))
	})
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// a shared client without its own timeout still gets the configured bound
	c := client.NewUsersClient(srv.URL, 100*time.Millisecond, time.Hour, clock.NewRealClock(), http.DefaultClient)

	start := time.Now()
	err := c.DeleteUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrDownstreamUnavailable))
	assert.Less(t, time.Since(start), time.Second)
	assert.Zero(t, http.DefaultClient.Timeout)
}

func TestTooManyRequestsIsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusTooManyRequests, resdto.MessageResponse{Message: "Too many requests"})
	}))
	defer srv.Close()

	c := client.NewUsersClient(srv.URL, time.Second, time.Hour, clock.NewRealClock(), nil)
	_, err := c.Login(context.Background(), reqdto.LoginRequest{Email: "a@x.com", Password: "p1"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrRateLimited))
	assert.False(t, errs.Is(err, errs.ErrDownstreamUnavailable))
}

// Every registration reaches the users service from the saga host, so the limiter there must
// see the end user's address.
func TestRegistrationsThroughOneHostKeepSeparateBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1}, clock.NewMockClock(time.Now()))
	engine := gin.New()
	require.NoError(t, engine.SetTrustedProxies([]string{"127.0.0.1", "::1"}))
	engine.POST("/register", limiter.Limit(), func(c *gin.Context) {
		var req reqdto.RegisterRequest
		if !assert.NoError(t, c.ShouldBindJSON(&req)) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.JSON(http.StatusCreated, resdto.RegisterResponse{User: resdto.UserResponse{ID: uuid.New(), Email: req.Email, Role: req.Role}})
	})
	srv := httptest.NewServer(engine)
	defer srv.Close()

	c := client.NewUsersClient(srv.URL, time.Second, time.Hour, clock.NewRealClock(), nil)
	register := func(ip string, n int) error {
		ctx := forwarded.WithClientIP(context.Background(), ip)
		_, err := c.Register(ctx, reqdto.RegisterRequest{Email: "u" + strconv.Itoa(n) + "@x.com", Password: "p1", Role: "customer"})
		return err
	}

	for i := range 15 {
		require.NoError(t, register("203.0.113."+strconv.Itoa(i+1), i), "registration %d", i+1)
	}

	err := register("203.0.113.1", 100)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrRateLimited))
}
