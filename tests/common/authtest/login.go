//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/handler/dto/request"
	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/tests/common/httptest"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) resdto.LoginResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.Token, "login returned no token")
	return res
}

// RegisterAndLogin goes through /register and /login and returns the bearer token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, email, password, role string) resdto.LoginResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/register",
		request.RegisterRequest{Email: email, Password: password, Role: role}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return LoginUser(t, router, email, password)
}
