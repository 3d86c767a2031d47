package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/recipe-ai/internal/api"
	apiMiddleware "github.com/phrazzld/recipe-ai/internal/api/middleware"
)

// maxRequestBodyBytes bounds request bodies
const maxRequestBodyBytes = 64 << 10

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxRequestBodyBytes))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	recipeHandler := api.NewRecipeHandler(app.generator, app.logger)
	sessionHandler := api.NewSessionHandler(app.sessions, app.logger)

	r.Route("/api", func(r chi.Router) {
		api.RegisterRoutes(r, recipeHandler, sessionHandler)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
