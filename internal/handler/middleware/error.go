package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"supplier-marketplace/internal/handler/httperr"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler writes the newest public error recorded by httperr if the handler left the
// response unwritten. Errors recorded without a public response become an opaque 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			e := c.Errors[i]
			if !e.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.ErrorContext(c.Request.Context(), "unhandled request errors",
			"request_id", GetRequestID(c),
			"path", c.FullPath(),
			"errors", c.Errors.Errors())
		c.JSON(http.StatusInternalServerError, httperr.Response{Message: internalErrorMessage})
	}
}

// CustomRecovery turns a panic into a 500 and logs the top of the goroutine stack.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", stackHead(12))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.Response{Status: http.StatusInternalServerError, Message: internalErrorMessage})
			}
		}()
		c.Next()
	}
}

func stackHead(maxLines int) []string {
	lines := strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
