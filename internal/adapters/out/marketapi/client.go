// Package marketapi implements the outbound gateways to the upstream
// marketplace REST API. Every request authenticates as the original caller
// with the bearer token carried in the context, so the server applies its own
// role checks on top of the gateway's local ones.
//
// Failures are classified into the three order-error kinds: request
// construction problems are validation errors, 4xx responses are business
// rejections carrying the server's message, and network failures or 5xx
// responses are transport errors. No state is cached here; callers persist
// confirmed responses through their own unit of work.
package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"epicerie/internal/pkg/bearer"
	"epicerie/internal/pkg/errs"
)

// defaultTimeout bounds a single marketplace round trip.
const defaultTimeout = 15 * time.Second

// Client is a thin HTTP client for the marketplace API, shared by the order
// and livreur gateways. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a marketplace API client. The base URL carries the API
// prefix, e.g. "https://market.example.com/api/v1".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// request describes one marketplace call for the do helper.
type request struct {
	// operation names the business operation for error messages,
	// e.g. "get order".
	operation string
	method    string
	path      string
	// body is JSON-encoded when non-nil.
	body any
	// notFound maps a 404 response to a caller-specific error. When nil a
	// 404 is treated like any other business rejection.
	notFound func() error
}

// errorPayload is the upstream error body shape.
type errorPayload struct {
	Message string `json:"message"`
}

// do executes one marketplace call and returns the raw response body.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	token, err := bearer.TokenFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.body != nil {
		raw, marshalErr := json.Marshal(req.body)
		if marshalErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("request body", marshalErr)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.NewTransportError(req.operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewTransportError(req.operation, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errs.NewTransportError(req.operation,
			fmt.Errorf("server returned status %d", resp.StatusCode))
	case resp.StatusCode == http.StatusNotFound && req.notFound != nil:
		return nil, req.notFound()
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, errs.NewBusinessRejectionError(req.operation, serverMessage(raw, resp.StatusCode))
	}

	return raw, nil
}

// decode unmarshals a successful response body. A garbled body means the
// request completed but the response is unusable, so it classifies as a
// transport failure.
func decode(operation string, raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.NewTransportError(operation, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// serverMessage extracts the upstream rejection message, falling back to a
// generic status line when the body carries none.
func serverMessage(raw []byte, status int) string {
	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("server returned status %d", status)
}
