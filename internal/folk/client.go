package folk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the folk API the client talks to unless overridden.
const DefaultBaseURL = "https://api.folk.app/v1"

// Client is the single chokepoint for outbound folk API calls. It injects
// the bearer credential, serializes bodies and classifies non-2xx responses
// into the typed errors in errors.go. One attempt per call, no retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type ClientConfig struct {
	BaseURL string
	APIKey  string

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

// Do issues a single request against the folk API. The path must already
// contain its segments and query string (e.g. "/people/123" or
// "/notes?limit=10"). A nil body sends no payload. On 204 or an empty 2xx
// body it returns a literal empty JSON object so callers never parse an
// empty byte slice.
func (c *Client) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("folk API request completed")

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{Detail: string(respBody)}
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthError{}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &APIError{Status: resp.StatusCode, Detail: string(respBody)}
	}

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return []byte("{}"), nil
	}

	return respBody, nil
}
