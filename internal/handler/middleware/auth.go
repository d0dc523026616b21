package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/handler/httperr"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var (
	errTokenMissing = errs.Mark(errs.New("Token not provided"), errs.ErrUnauthorized)
	errRoleDenied   = errs.Mark(errs.New("Access denied: insufficient role"), errs.ErrForbidden)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth answers 401 when no bearer token is sent and 403 when the token does not verify.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, errTokenMissing.Error(), nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError,
				errs.New("RequireRole used without RequireAuth"), "Internal server error", nil)
			return
		}

		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}

		httperr.AbortWithError(c, http.StatusForbidden, errRoleDenied, roleDeniedMessage(allowed), nil)
	}
}

func roleDeniedMessage(allowed []user.Role) string {
	if len(allowed) == 1 {
		return "Access denied: " + allowed[0].String() + " role required"
	}
	return errRoleDenied.Error()
}

// scheme match is case-insensitive
func bearerToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return contextValue[uuid.UUID](c, ctxUserIDKey)
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	return contextValue[user.Role](c, ctxUserRoleKey)
}

func contextValue[T any](c *gin.Context, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
