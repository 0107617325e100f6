package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkarpov/socialite-api/internal/api/shared"
)

func TestTraceMiddlewareSetsTraceID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := NewTraceMiddleware(slog.Default())(next)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, seen, 32, "handler should observe a 32-char trace id")
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	ids := map[string]bool{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[shared.GetTraceID(r.Context())] = true
	})

	handler := NewTraceMiddleware(slog.Default())(next)
	for i := 0; i < 5; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	}

	assert.Len(t, ids, 5)
}
