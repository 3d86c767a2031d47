package generation

import (
	"context"

	"github.com/phrazzld/recipe-ai/internal/domain"
)

// Generator defines the interface for generating meal ideas and cooking
// instructions from an ingredient list. It is the only way the application
// talks to the external language model.
type Generator interface {
	// GenerateMealSuggestions asks the model for dish names that can be made
	// from the ingredients. It fails with ErrEmptyResponse when the model
	// returns no text, or with an *APIError for any provider failure.
	GenerateMealSuggestions(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error)

	// GenerateInstructions asks the model for step-by-step instructions for
	// the meal and returns the body unchanged. Failure modes match
	// GenerateMealSuggestions.
	GenerateInstructions(ctx context.Context, meal string, ingredients []string) (string, error)
}
