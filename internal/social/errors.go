package social

import "fmt"

// Category buckets upstream platform failures into the shapes callers can
// act on. Fetch errors are surfaced verbatim, never retried past the client's
// own bounded backoff.
type Category string

const (
	CategoryAuth      Category = "auth"
	CategoryNotFound  Category = "not_found"
	CategoryRateLimit Category = "rate_limit"
	CategoryTimeout   Category = "timeout"
	CategoryUnknown   Category = "unknown"
)

// FetchError wraps an upstream platform failure with its category.
type FetchError struct {
	Category   Category
	Platform   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s fetch failed (%s, status %d): %v", e.Platform, e.Category, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s fetch failed (%s): %v", e.Platform, e.Category, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
