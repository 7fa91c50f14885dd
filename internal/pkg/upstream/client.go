// Package upstream is the HTTP transport against the academic-records
// backend. The client is built from explicit configuration (base URL,
// timeout, token source) rather than ambient global state so it can be
// exercised in isolation against a test server.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TokenSource yields the bearer token to attach to a request. An empty
// token means the request proceeds unauthenticated; the backend is expected
// to reject writes with 401/403 in that case.
type TokenSource interface {
	Token(ctx context.Context) string
}

// StaticToken is a TokenSource with a fixed value, mainly for tests and
// service-account style configuration.
type StaticToken string

// Token implements TokenSource
func (t StaticToken) Token(ctx context.Context) string {
	return string(t)
}

// ContextToken reads the per-request token stashed by the auth middleware
type ContextToken struct{}

// Token implements TokenSource
func (ContextToken) Token(ctx context.Context) string {
	return TokenFromContext(ctx)
}

type tokenContextKey struct{}

// WithToken returns a context carrying the bearer token for this request
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the bearer token carried by ctx, or empty
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey{}).(string); ok {
		return token
	}
	return ""
}

// RequestError is the sole error channel for non-2xx backend responses.
// Message holds the response body text, or the status line when the body
// was empty, and is surfaced to the user verbatim.
type RequestError struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return e.Message
}

// Payload is the decoded result of a backend call: raw JSON when the
// response declared a JSON content type, plain text otherwise, both empty
// for a 204.
type Payload struct {
	JSON json.RawMessage
	Text string
}

// Client issues requests against the records backend
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  zerolog.Logger
}

// NewClient creates a backend client. timeout bounds every request; there
// are no retries and no backoff, a failed call is reported once.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// Do performs a request against the backend. Non-GET methods serialize body
// as JSON; a nil body sends no payload. On a 2xx status the response is
// decoded per content type, anything else returns a *RequestError.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (Payload, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Payload{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return Payload{}, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = resp.Status
		}
		c.logger.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("Backend returned error status")
		return Payload{}, &RequestError{Status: resp.StatusCode, Message: message}
	}

	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return Payload{}, nil
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "json") {
		return Payload{JSON: json.RawMessage(raw)}, nil
	}
	return Payload{Text: string(raw)}, nil
}

// Get fetches path and returns the raw JSON payload
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	payload, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return payload.JSON, nil
}

// Post sends body to path and returns the raw JSON payload, if any
func (c *Client) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	payload, err := c.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	return payload.JSON, nil
}

// Put sends a full update of body to path
func (c *Client) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	payload, err := c.Do(ctx, http.MethodPut, path, body)
	if err != nil {
		return nil, err
	}
	return payload.JSON, nil
}

// Delete removes the resource at path
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}
