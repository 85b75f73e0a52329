package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	log, buf := logger.NewTestLogger()

	var seenTraceID string
	handler := middleware.TraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("generates trace id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))

		_, err := uuid.Parse(seenTraceID)
		require.NoError(t, err)
		assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		last := entries[len(entries)-1]
		assert.Equal(t, "inside handler", last["msg"])
		assert.Equal(t, seenTraceID, last["trace_id"])
	})

	t.Run("reuses valid incoming trace id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set(shared.TraceIDHeader, incoming)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, incoming, seenTraceID)
	})

	t.Run("replaces malformed incoming trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set(shared.TraceIDHeader, "<script>")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.NotEqual(t, "<script>", seenTraceID)
		_, err := uuid.Parse(seenTraceID)
		assert.NoError(t, err)
	})
}
