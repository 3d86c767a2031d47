package api

import (
	"strings"

	"github.com/phrazzld/recipe-ai/internal/domain"
)

// SuggestionsRequest is the body of a meal suggestion request.
type SuggestionsRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,max=50,unique,dive,nonblank,max=100"`
}

// normalize trims every ingredient in place.
func (r *SuggestionsRequest) normalize() {
	trimAll(r.Ingredients)
}

// InstructionsRequest is the body of a cooking instruction request.
type InstructionsRequest struct {
	Meal        string   `json:"meal"        validate:"required,nonblank,max=200"`
	Ingredients []string `json:"ingredients" validate:"required,min=1,max=50,unique,dive,nonblank,max=100"`
}

// normalize trims the meal name and every ingredient in place.
func (r *InstructionsRequest) normalize() {
	r.Meal = strings.TrimSpace(r.Meal)
	trimAll(r.Ingredients)
}

// SuggestionsResponse is returned by the suggestion endpoint.
type SuggestionsResponse struct {
	Suggestions []domain.MealSuggestion `json:"suggestions"`
}

// InstructionsResponse is returned by the instruction endpoint.
type InstructionsResponse = domain.RecipeInstructions

func trimAll(values []string) {
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
}
