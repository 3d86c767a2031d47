package domain

import (
	"strings"

	"github.com/google/uuid"
)

// MealSuggestion is a single dish name proposed by the language model.
type MealSuggestion struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewMealSuggestion creates a MealSuggestion with a fresh identifier.
// The name is trimmed and must not be empty.
func NewMealSuggestion(name string) (MealSuggestion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MealSuggestion{}, ErrEmptyMealName
	}

	return MealSuggestion{
		ID:   uuid.New(),
		Name: name,
	}, nil
}

// RecipeInstructions holds the cooking instructions generated for a meal.
type RecipeInstructions struct {
	ID           uuid.UUID `json:"id"`
	MealName     string    `json:"meal_name"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
}

// NewRecipeInstructions creates RecipeInstructions with a fresh identifier.
// The body is stored exactly as returned by the model; it only has to contain
// something other than whitespace.
func NewRecipeInstructions(mealName string, ingredients []string, body string) (RecipeInstructions, error) {
	if strings.TrimSpace(body) == "" {
		return RecipeInstructions{}, ErrEmptyInstructions
	}

	// Copy so the caller's slice can't change the value afterwards
	used := make([]string, len(ingredients))
	copy(used, ingredients)

	return RecipeInstructions{
		ID:           uuid.New(),
		MealName:     mealName,
		Ingredients:  used,
		Instructions: body,
	}, nil
}
