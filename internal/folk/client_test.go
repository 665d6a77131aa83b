package folk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "test-key"})
}

func TestClient_Do_Success(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"id":"p1"}}`))
	})

	raw, err := client.Do(context.Background(), http.MethodGet, "/people/p1", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":"p1"}}`, string(raw))

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_Do_SerializesBody(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	})

	_, err := client.Do(context.Background(), http.MethodPost, "/people", map[string]any{"firstName": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"firstName": "Ada"}, gotBody)
}

func TestClient_Do_NoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	raw, err := client.Do(context.Background(), http.MethodDelete, "/people/p1", nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestClient_Do_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"too many requests, slow down"}`))
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/people", nil)
	require.Error(t, err)

	var rateErr *RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Contains(t, err.Error(), "too many requests, slow down")
}

func TestClient_Do_Unauthenticated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"unauthorized"}`))
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/people", nil)
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))

	// The advisory message must never leak credential material.
	assert.NotContains(t, err.Error(), "Bearer")
	assert.NotContains(t, err.Error(), "test-key")
}

func TestClient_Do_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/people", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "boom")
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Do(ctx, http.MethodGet, "/people", nil)
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{APIKey: "k"})
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
}
