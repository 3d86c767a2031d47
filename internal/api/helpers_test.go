package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/recipe-ai/internal/api/middleware"
	"github.com/phrazzld/recipe-ai/internal/api/shared"
	"github.com/phrazzld/recipe-ai/internal/mocks"
	"github.com/phrazzld/recipe-ai/internal/platform/logger"
	"github.com/phrazzld/recipe-ai/internal/session"
	"github.com/phrazzld/recipe-ai/internal/task"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds a router with the recipe and session handlers backed by gen.
func newTestRouter(t *testing.T, gen *mocks.MockGenerator) (http.Handler, *session.Manager) {
	t.Helper()

	log, _ := logger.NewTestLogger(t)

	queue := task.NewTaskQueue(16, log)
	pool := task.NewWorkerPool(queue, task.WorkerPoolConfig{WorkerCount: 2}, log)
	pool.Start()
	t.Cleanup(pool.Stop)

	manager := session.NewManager(gen, queue, session.ManagerConfig{TTL: time.Minute}, log)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(log))
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, NewRecipeHandler(gen, log), NewSessionHandler(manager, log))
	})

	return r, manager
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
