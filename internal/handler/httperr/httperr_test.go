//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"supplier-marketplace/internal/handler/httperr"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/tests/common/httptest"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", errs.Mark(errs.New("bad"), errs.ErrInvalidInput), http.StatusBadRequest},
		{"unauthorized", errs.Mark(errs.New("who"), errs.ErrUnauthorized), http.StatusUnauthorized},
		{"forbidden", errs.Mark(errs.New("no"), errs.ErrForbidden), http.StatusForbidden},
		{"not found", errs.Mark(errs.New("gone"), errs.ErrNotFound), http.StatusNotFound},
		{"conflict", errs.Mark(errs.New("dup"), errs.ErrConflict), http.StatusConflict},
		{"downstream", errs.Mark(errs.New("down"), errs.ErrDownstreamUnavailable), http.StatusBadGateway},
		{"wrapped mark", errs.Wrap(errs.Mark(errs.New("dup"), errs.ErrConflict), "create"), http.StatusConflict},
		{"unmarked", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.Status(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/conflict", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(errs.New("User with this email already exists"), errs.ErrConflict))
	})
	router.GET("/internal", func(c *gin.Context) {
		httperr.Abort(c, errors.New("pq: relation users does not exist"))
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "User with this email already exists")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/internal", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "relation users")
}
