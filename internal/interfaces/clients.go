package interfaces

import "context"

// APIClient issues requests against the ZenMoney backend.
type APIClient interface {
	// Request performs one HTTP call and returns the raw response body.
	// A 204 or non-JSON response yields an empty JSON array, never nil.
	Request(ctx context.Context, method, path string, body any) ([]byte, error)
}
