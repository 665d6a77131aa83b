package folk

import "fmt"

// RateLimitError is returned when the folk API answers 429. The caller is
// expected to surface it as-is; no retry is attempted anywhere in this
// process.
type RateLimitError struct {
	Detail string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("folk API rate limit exceeded: %s", e.Detail)
}

// AuthError is returned when the folk API answers 401. The message is fixed
// and must never carry the configured API key or any part of the request
// credential.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "folk API authentication failed: check that FOLK_API_KEY is set to a valid API key"
}

// APIError covers every other non-2xx response.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("folk API error (status %d): %s", e.Status, e.Detail)
}
