package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddlewareSetsTraceID(t *testing.T) {
	t.Parallel()

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()

	TraceMiddleware(next).ServeHTTP(rec, req)

	assert.Len(t, traceID, shared.TraceIDLength*2, "trace ID is a hex string of the configured byte length")
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[shared.GetTraceID(r.Context())] = true
	})

	handler := TraceMiddleware(next)
	for i := 0; i < 5; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	assert.Len(t, seen, 5)
}
