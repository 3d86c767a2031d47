package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/recipe-ai/internal/api/shared"
	"github.com/phrazzld/recipe-ai/internal/platform/logger"
	"github.com/phrazzld/recipe-ai/internal/session"
)

// SessionHandler serves the asynchronous, session-based flow. Requests are
// accepted immediately and their outcome is read back from the session.
type SessionHandler struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(manager *session.Manager, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		manager: manager,
		logger:  logger.With(slog.String("component", "session_handler")),
	}
}

// Create handles POST /api/sessions requests
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()
	w.Header().Set("Location", "/api/sessions/"+s.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, s.Snapshot())
}

// Get handles GET /api/sessions/{id} requests
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, s.Snapshot())
}

// Delete handles DELETE /api/sessions/{id} requests
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.manager.Delete(id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RequestSuggestions handles POST /api/sessions/{id}/suggestions requests
func (h *SessionHandler) RequestSuggestions(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req SuggestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := s.RequestSuggestions(req.Ingredients); err != nil {
		HandleAPIError(w, r, err, "Failed to start request")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("suggestion request accepted",
		slog.String("session_id", s.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusAccepted, s.Snapshot())
}

// RequestInstructions handles POST /api/sessions/{id}/instructions requests
func (h *SessionHandler) RequestInstructions(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req InstructionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := s.RequestInstructions(req.Meal, req.Ingredients); err != nil {
		HandleAPIError(w, r, err, "Failed to start request")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("instruction request accepted",
		slog.String("session_id", s.ID.String()),
		slog.String("meal", req.Meal))
	shared.RespondWithJSON(w, r, http.StatusAccepted, s.Snapshot())
}

// Retry handles POST /api/sessions/{id}/{slot}/retry requests
func (h *SessionHandler) Retry(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := s.Retry(chi.URLParam(r, "slot")); err != nil {
		HandleAPIError(w, r, err, "Failed to retry request")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, s.Snapshot())
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	s, err := h.manager.Get(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	return s, true
}
