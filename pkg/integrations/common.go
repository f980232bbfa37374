package integrations

import (
	"errors"
	"net/http"
	"time"

	"github.com/matzehuels/rustbrew/pkg/buildinfo"
)

var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-200 responses).
	ErrNetwork = errors.New("network error")
)

// UserAgent identifies rustbrew to remote endpoints.
func UserAgent() string {
	return "rustbrew/" + buildinfo.Short() + " (https://github.com/matzehuels/rustbrew)"
}

// NewHTTPClient creates an HTTP client with the given overall request timeout.
// A timeout of 0 means no timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
