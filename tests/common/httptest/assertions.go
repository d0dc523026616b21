//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody is the flat error envelope every endpoint writes.
type ErrorBody struct {
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// AssertSuccessResponse checks the status and, for 2xx with a target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if targetStruct == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the message contains wantMsg. An empty
// wantMsg only requires the envelope to be present.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, wantMsg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String())

	var body ErrorBody
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String()) {
		return
	}
	assert.NotEmpty(t, body.Message, "error envelope without message")
	if wantMsg != "" {
		assert.Contains(t, body.Message, wantMsg)
	}
}
