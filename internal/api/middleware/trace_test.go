package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/recipe-ai/internal/api/shared"
	"github.com/phrazzld/recipe-ai/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	log, buf := logger.NewTestLogger(t)

	var seenTrace string
	var loggerInContext bool
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace = shared.GetTraceID(r.Context())
		reqLog := logger.FromContext(r.Context())
		loggerInContext = reqLog != nil
		if reqLog != nil {
			reqLog.Info("inside handler")
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, seenTrace)
	assert.True(t, loggerInContext)
	assert.Equal(t, seenTrace, rec.Header().Get(shared.TraceIDHeader))

	var tagged bool
	for _, entry := range buf.Entries(t) {
		if entry["msg"] == "inside handler" {
			tagged = entry["trace_id"] == seenTrace
		}
	}
	assert.True(t, tagged, "request logger carries the trace ID")
}

func TestTraceMiddleware_ReusesIncomingID(t *testing.T) {
	var seenTrace string
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace = shared.GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(shared.TraceIDHeader, "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc-123", seenTrace)
}
