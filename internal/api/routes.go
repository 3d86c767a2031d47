package api

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the recipe and session endpoints on r.
// sessions may be nil, in which case only the one-shot endpoints are served.
func RegisterRoutes(r chi.Router, recipes *RecipeHandler, sessions *SessionHandler) {
	r.Post("/suggestions", recipes.Suggestions)
	r.Post("/instructions", recipes.Instructions)

	if sessions == nil {
		return
	}

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", sessions.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", sessions.Get)
			r.Delete("/", sessions.Delete)
			r.Post("/suggestions", sessions.RequestSuggestions)
			r.Post("/instructions", sessions.RequestInstructions)
			r.Post("/{slot}/retry", sessions.Retry)
		})
	})
}
