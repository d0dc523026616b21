// Package client reaches the users and companies services over HTTP, the way the sign-up form does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	resdto "supplier-marketplace/internal/handler/dto/response"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/pkg/forwarded"
)

const maxErrorBody = 64 << 10

type baseClient struct {
	baseURL string
	http    *http.Client
}

// newBaseClient bounds every call by timeout. A supplied client without its own timeout is
// copied and given this one, so no downstream call can hang indefinitely.
func newBaseClient(baseURL string, timeout time.Duration, httpClient *http.Client) baseClient {
	switch {
	case httpClient == nil:
		httpClient = &http.Client{Timeout: timeout}
	case httpClient.Timeout == 0 && timeout > 0:
		bounded := *httpClient
		bounded.Timeout = timeout
		httpClient = &bounded
	}
	return baseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c baseClient) do(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, path, "", body, out)
}

// send encodes body as JSON and decodes a 2xx response into out. Other statuses become errors
// carrying the service's message and the matching taxonomy mark. A non-empty token is sent as a
// bearer credential.
func (c baseClient) send(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ip := forwarded.ClientIP(ctx); ip != "" {
		req.Header.Set(forwarded.Header, ip)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "%s %s", method, path), errs.ErrDownstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var body resdto.MessageResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		body.Message = resp.Status
	}

	err := errs.New(body.Message)
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return errs.Mark(err, errs.ErrInvalidInput)
	case http.StatusUnauthorized:
		return errs.Mark(err, errs.ErrUnauthorized)
	case http.StatusForbidden:
		return errs.Mark(err, errs.ErrForbidden)
	case http.StatusNotFound:
		return errs.Mark(err, errs.ErrNotFound)
	case http.StatusConflict:
		return errs.Mark(err, errs.ErrConflict)
	case http.StatusTooManyRequests:
		return errs.Mark(err, errs.ErrRateLimited)
	default:
		return errs.Mark(errs.Wrapf(err, "status %d", resp.StatusCode), errs.ErrDownstreamUnavailable)
	}
}
