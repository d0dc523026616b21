//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/handler/middleware"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase"
	"supplier-marketplace/tests/common/httptest"
	usecasemock "supplier-marketplace/tests/mock/usecase"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *usecasemock.MockTokenValidator)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Token not provided",
		},
		{
			name:       "not a bearer scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Token not provided",
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("broken").
					Return(uuid.Nil, user.Role(""), errs.Mark(errs.New("signature is invalid"), usecase.ErrTokenRejected))
			},
			wantStatus: http.StatusForbidden,
			wantMsg:    "Invalid token",
		},
		{
			name:       "bearer without a token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Token not provided",
		},
		{
			name:   "scheme is case-insensitive",
			header: "bearer good",
			setup: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(userID, user.RoleSupplier, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(userID, user.RoleSupplier, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			if tt.setup != nil {
				tt.setup(validator)
			}

			router := gin.New()
			router.GET("/me", middleware.NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
				id, ok := middleware.GetUserID(c)
				require.True(t, ok)
				role, ok := middleware.GetUserRole(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
			})

			req := nethttptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := nethttptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"id":"`+userID.String()+`","role":"supplier"}`, rec.Body.String())
				return
			}
			httptest.AssertErrorResponse(t, rec, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	withRole := func(role user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			c.Set("user_role", role)
			c.Next()
		}
	}
	auth := middleware.NewAuthMiddleware(nil)
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	router := gin.New()
	router.GET("/operator", withRole(user.RoleOperator), auth.RequireRole(user.RoleOperator), ok)
	router.GET("/supplier", withRole(user.RoleSupplier), auth.RequireRole(user.RoleOperator), ok)
	router.GET("/either", withRole(user.RoleCustomer), auth.RequireRole(user.RoleOperator, user.RoleSupplier), ok)
	router.GET("/anonymous", auth.RequireRole(user.RoleOperator), ok)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/operator", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/supplier", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Access denied: operator role required")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/either", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Access denied")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/anonymous", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

var limiterEpoch = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func limitedRequest(router http.Handler, remoteAddr, forwardedFor string) int {
	req := nethttptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects once the burst is spent", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2}, clock.NewMockClock(limiterEpoch))
		router := gin.New()
		router.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for range 2 {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
			require.Equal(t, http.StatusOK, rec.Code)
		}
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("buckets are per client", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1}, clock.NewMockClock(limiterEpoch))
		router := gin.New()
		router.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for _, ip := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
			req := nethttptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = ip
			rec := nethttptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code, ip)
		}
	})

	t.Run("trusted peer is keyed by the forwarded client", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1}, clock.NewMockClock(limiterEpoch))
		router := gin.New()
		require.NoError(t, router.SetTrustedProxies([]string{"127.0.0.1"}))
		router.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		// one host relaying many users
		for i := range 20 {
			ip := "203.0.113." + strconv.Itoa(i+1)
			assert.Equal(t, http.StatusOK, limitedRequest(router, "127.0.0.1:4000", ip), ip)
		}
		assert.Equal(t, http.StatusTooManyRequests, limitedRequest(router, "127.0.0.1:4000", "203.0.113.1"))
	})

	t.Run("untrusted peer cannot pick its bucket", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1}, clock.NewMockClock(limiterEpoch))
		router := gin.New()
		require.NoError(t, router.SetTrustedProxies([]string{"127.0.0.1"}))
		router.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, limitedRequest(router, "198.51.100.9:4000", "203.0.113.1"))
		assert.Equal(t, http.StatusTooManyRequests, limitedRequest(router, "198.51.100.9:4000", "203.0.113.2"))
	})

	t.Run("idle buckets are evicted", func(t *testing.T) {
		clk := clock.NewMockClock(limiterEpoch)
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1, IdleTTL: time.Minute}, clk)
		router := gin.New()
		router.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
			require.Equal(t, http.StatusOK, limitedRequest(router, addr, ""))
		}
		assert.Equal(t, 3, limiter.Tracked())

		clk.Add(2 * time.Minute)
		require.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.4:1", ""))
		assert.Equal(t, 1, limiter.Tracked())

		// an evicted client starts with a fresh burst
		assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.1:1", ""))
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{}, clock.NewMockClock(limiterEpoch))
		router := gin.New()
		router.POST("/login", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for range 5 {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := middleware.NewMetrics()
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", m.Handler())

	httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")
	rec := httptest.PerformRequest(t, router, http.MethodGet, "/metrics", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `marketplace_http_requests_total{method="GET",route="/health",status="200"} 1`), body)
	assert.Contains(t, body, "marketplace_http_request_duration_seconds")
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(_ *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestLoggingMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02"})
	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Body.String())
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")
	generated := rec.Header().Get("X-Request-ID")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, rec.Body.String())

	req = nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "has spaces in it")
	rec = nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, "has spaces in it", rec.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(cfg config.CORSConfig) *gin.Engine {
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(cfg))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("listed origin gets bearer header and request id exposed", func(t *testing.T) {
		router := newRouter(config.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		})

		req := nethttptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "GET")
		req.Header.Set("Access-Control-Request-Headers", "authorization")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "authorization")

		req = nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec = nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		router := newRouter(config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET"},
			AllowCredentials: true,
		})

		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://elsewhere.example")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		router := newRouter(config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET"},
		})

		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://elsewhere.example")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
