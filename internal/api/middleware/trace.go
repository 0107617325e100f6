// Package middleware provides HTTP middleware applied around the API
// handlers.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/nkarpov/socialite-api/internal/api/shared"
)

// NewTraceMiddleware returns a middleware that adds a trace ID to the
// request context. It should be applied early in the middleware chain so
// that all subsequent handlers have access to the trace ID.
func NewTraceMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			log := logger.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
