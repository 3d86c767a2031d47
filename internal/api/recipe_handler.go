package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/recipe-ai/internal/api/shared"
	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/platform/logger"
)

// RecipeHandler serves one-shot suggestion and instruction requests.
type RecipeHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(generator generation.Generator, logger *slog.Logger) *RecipeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RecipeHandler")
	}

	return &RecipeHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "recipe_handler")),
	}
}

// Suggestions handles POST /api/suggestions requests
func (h *RecipeHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SuggestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log.Debug("generating suggestions", slog.Int("ingredient_count", len(req.Ingredients)))

	suggestions, err := h.generator.GenerateMealSuggestions(r.Context(), req.Ingredients)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate suggestions")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// Instructions handles POST /api/instructions requests
func (h *RecipeHandler) Instructions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req InstructionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log.Debug("generating instructions",
		slog.String("meal", req.Meal),
		slog.Int("ingredient_count", len(req.Ingredients)))

	body, err := h.generator.GenerateInstructions(r.Context(), req.Meal, req.Ingredients)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate instructions")
		return
	}

	recipe, err := domain.NewRecipeInstructions(req.Meal, req.Ingredients, body)
	if err != nil {
		HandleAPIError(w, r, generation.ErrEmptyResponse, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, recipe)
}
