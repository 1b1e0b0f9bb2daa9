package http

import (
	"net/http"
	"time"

	"github.com/mkarneev/homestock/internal/logger"
)

// withLogging emits one access-log line per request. Blob bodies are opaque
// ciphertext, so only the envelope of the request is logged, never content.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
