package http

import (
	"errors"
	"net/http"

	"github.com/mkarneev/homestock/internal/store"
)

// statusFromError maps storage errors to HTTP status codes. Transient
// database failures become 503 so clients know to retry later.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, store.ErrBlobNotFound):
		return http.StatusNotFound
	case store.ClassifyError(err) == store.Retryable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
