package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"supplier-marketplace/internal/pkg/errs"
)

const internalMessage = "Internal server error"

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Status maps the error taxonomy onto HTTP. Anything unmarked is a 500.
func Status(err error) int {
	switch errs.Category(err) {
	case errs.ErrInvalidInput:
		return http.StatusBadRequest
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrRateLimited:
		return http.StatusTooManyRequests
	case errs.ErrDownstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes err with its mapped status. Internal errors are logged with their stack and
// reach the client only as an opaque message.
func Abort(c *gin.Context, err error) {
	status := Status(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		if status == http.StatusInternalServerError {
			msg = internalMessage
		}
	}
	AbortWithError(c, status, err, msg, nil)
}

// BadRequest reports a body or path that failed binding.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
