// Package zenapi provides a client for the ZenMoney backend API
package zenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/interfaces"
)

// emptyCollection is what a 204 or non-JSON success resolves to: callers
// must see "no content" as valid empty-success, not failure.
var emptyCollection = []byte("[]")

// Client implements the APIClient interface
type Client struct {
	baseURL    string
	creds      interfaces.CredentialProvider
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client. The default imposes no timeout:
// each call resolves or rejects exactly once, driven only by the caller's
// context.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables limiting.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// NewClient creates a new ZenMoney API client. The credential provider is the
// only path to the bearer token; the client never touches global state.
func NewClient(baseURL string, creds interfaces.CredentialProvider, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		creds:      creds,
		httpClient: &http.Client{},
		logger:     common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError represents a network-level failure: no response reached the
// server. The message is the underlying transport error verbatim so callers
// can recognize connectivity and CORS-style misconfiguration.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is a network-level failure rather than
// an application error from the backend.
func IsNetworkError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Request performs one HTTP call against the backend. Success with a JSON
// content type returns the raw body; 204 or a non-JSON content type returns
// an empty collection. Non-2xx returns *APIError, network failure returns
// *TransportError. No retries, no client-imposed timeout.
func (c *Client) Request(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	reqURL := joinURL(c.baseURL, path)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	c.logger.Debug().Str("request_id", requestID).Str("method", method).Str("url", reqURL).Msg("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("request_id", requestID).Err(err).Msg("API request failed")
		return nil, &TransportError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.serverError(resp, path)
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode == http.StatusNoContent || !strings.Contains(contentType, "application/json") {
		return emptyCollection, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: err}
	}

	c.logger.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).Int("bytes", len(data)).Msg("API response")
	return data, nil
}

// Get issues a GET request
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Request(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.Request(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}

// serverError builds an APIError from a non-2xx response, extracting a
// human-readable message from a conventional `detail` envelope when present.
func (c *Client) serverError(resp *http.Response, endpoint string) error {
	message := fmt.Sprintf("Server error: %d", resp.StatusCode)

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		body, err := io.ReadAll(resp.Body)
		if err == nil {
			if detail := extractDetail(body); detail != "" {
				message = detail
			}
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Endpoint:   endpoint,
	}
}

// extractDetail pulls a message from {"detail": "..."} or from the first
// entry of a validation-issue list {"detail": [{"msg": "..."}]}.
func extractDetail(body []byte) string {
	var env struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	switch d := env.Detail.(type) {
	case string:
		return d
	case []any:
		if len(d) == 0 {
			return ""
		}
		if issue, ok := d[0].(map[string]any); ok {
			if msg, ok := issue["msg"].(string); ok {
				return msg
			}
		}
		if s, ok := d[0].(string); ok {
			return s
		}
	}
	return ""
}

// joinURL joins a path onto the base URL, normalizing duplicate slashes.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// Do performs a request and decodes the response into T. An empty-collection
// response decodes to T's zero value.
func Do[T any](ctx context.Context, c interfaces.APIClient, method, path string, body any) (T, error) {
	var out T

	data, err := c.Request(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	if len(data) == 0 || bytes.Equal(data, emptyCollection) {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return out, nil
}

// Ensure Client implements APIClient
var _ interfaces.APIClient = (*Client)(nil)
