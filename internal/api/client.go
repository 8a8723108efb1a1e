// Package api is the typed client for the Jarvis Budget REST backend.
// Every method maps to a single endpoint; the backend is the source of
// truth and nothing is cached here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/common"
)

const defaultTimeout = 30 * time.Second

// Config holds the settings needed to reach the backend.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client talks to the Jarvis backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. Token may be empty for the auth
// endpoints; everything else will come back 401 without it.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: api.base_url is not set", common.ErrMissingConfig)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &bearerTransport{
				token: cfg.Token,
				base:  http.DefaultTransport,
			},
		},
	}, nil
}

// bearerTransport attaches the stored token to every outgoing request.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	return t.base.RoundTrip(req)
}

// Error is a backend-reported failure: an HTTP status plus whatever
// message the response body carried.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsAuthError reports whether err is a 401 from the backend.
func IsAuthError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// do performs a request and returns the raw response body. Statuses
// >= 400 become *Error with the backend message extracted.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody),
		}
	}

	return respBody, nil
}

// getJSON fetches path and decodes the body into out. An empty or null
// body leaves out untouched.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeBody(body, out)
}

// postJSON sends payload to path and optionally decodes the response.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := c.do(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	return decodeBody(body, out)
}

// patchJSON sends a partial update to path and optionally decodes the response.
func (c *Client) patchJSON(ctx context.Context, path string, payload, out any) error {
	body, err := c.do(ctx, http.MethodPatch, path, nil, payload)
	if err != nil {
		return err
	}
	return decodeBody(body, out)
}

// delete removes the resource at path.
func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func decodeBody(body []byte, out any) error {
	if out == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	// Single resources may also arrive wrapped in a data envelope.
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &envelope); err == nil && isObject(envelope.Data) {
			trimmed = envelope.Data
		}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeList normalizes every list response shape the backend produces:
// a bare array, a {data: [...]} envelope, or a null/empty body. It always
// yields a slice and never fails on shape alone.
func decodeList[T any](body []byte) []T {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil || envelope.Data == nil {
			return []T{}
		}
		trimmed = bytes.TrimSpace(envelope.Data)
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// getList fetches path and normalizes the list body.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](body), nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// extractMessage pulls the human-readable error out of a backend error
// body. The backend uses "message"; older endpoints use "error".
func extractMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return parsed.Err
}
