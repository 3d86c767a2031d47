package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestions_Success(t *testing.T) {
	var gotIngredients []string
	gen := &mocks.MockGenerator{
		GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
			gotIngredients = ingredients
			return mocks.Suggestions("Chicken Fried Rice", "Garlic Rice Bowl"), nil
		},
	}
	router, _ := newTestRouter(t, gen)

	rec := doRequest(t, router, http.MethodPost, "/api/suggestions",
		map[string]interface{}{"ingredients": []string{" Chicken ", "Rice"}})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"Chicken", "Rice"}, gotIngredients)

	var resp SuggestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "Chicken Fried Rice", resp.Suggestions[0].Name)
	assert.Equal(t, "Garlic Rice Bowl", resp.Suggestions[1].Name)
}

func TestSuggestions_Validation(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
			t.Fatal("generator must not be called for invalid input")
			return nil, nil
		},
	}
	router, _ := newTestRouter(t, gen)

	tests := []struct {
		name        string
		body        interface{}
		wantMessage string
	}{
		{"malformed json", "{not json", "Invalid request format"},
		{"empty body", "", "Invalid request format"},
		{"missing ingredients", map[string]interface{}{}, "Invalid ingredients: required field"},
		{"empty list", map[string]interface{}{"ingredients": []string{}}, "Invalid ingredients: must have at least 1 entries"},
		{"blank entry", map[string]interface{}{"ingredients": []string{"Egg", "  "}}, "Invalid ingredients[1]: must not be blank"},
		{"duplicates", map[string]interface{}{"ingredients": []string{"Egg", " Egg"}}, "Invalid ingredients: must not contain duplicates"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/suggestions", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tc.wantMessage, resp.Error)
			assert.NotEmpty(t, resp.TraceID)
		})
	}
}

func TestSuggestions_GenerationErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "empty response",
			err:         generation.ErrEmptyResponse,
			wantStatus:  http.StatusBadGateway,
			wantMessage: "The AI returned an empty response",
		},
		{
			name:        "transient exhausted",
			err:         generation.NewAPIError(errors.New("The model is overloaded."), 503, true),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "API error: The model is overloaded.",
		},
		{
			name:        "permanent",
			err:         generation.NewAPIError(errors.New("API key not valid"), 400, false),
			wantStatus:  http.StatusBadGateway,
			wantMessage: "API error: API key not valid",
		},
		{
			name:        "unexpected",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to generate suggestions",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &mocks.MockGenerator{
				GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
					return nil, tc.err
				},
			}
			router, _ := newTestRouter(t, gen)

			rec := doRequest(t, router, http.MethodPost, "/api/suggestions",
				map[string]interface{}{"ingredients": []string{"Egg"}})

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMessage, decodeError(t, rec).Error)
		})
	}
}

func TestInstructions_Success(t *testing.T) {
	body := "1. Whisk the eggs.\n2. Melt butter.\n3. Cook gently."
	gen := &mocks.MockGenerator{
		GenerateInstructionsFn: func(ctx context.Context, meal string, ingredients []string) (string, error) {
			assert.Equal(t, "Omelette", meal)
			assert.Equal(t, []string{"Egg", "Butter"}, ingredients)
			return body, nil
		},
	}
	router, _ := newTestRouter(t, gen)

	rec := doRequest(t, router, http.MethodPost, "/api/instructions", map[string]interface{}{
		"meal":        " Omelette ",
		"ingredients": []string{"Egg", "Butter"},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp InstructionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Omelette", resp.MealName)
	assert.Equal(t, body, resp.Instructions)
	assert.Equal(t, []string{"Egg", "Butter"}, resp.Ingredients)
}

func TestInstructions_Validation(t *testing.T) {
	router, _ := newTestRouter(t, &mocks.MockGenerator{})

	rec := doRequest(t, router, http.MethodPost, "/api/instructions", map[string]interface{}{
		"meal":        "   ",
		"ingredients": []string{"Egg"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid meal: required field", decodeError(t, rec).Error)
}

func TestInstructions_BlankBodyIsEmptyResponse(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateInstructionsFn: func(ctx context.Context, meal string, ingredients []string) (string, error) {
			return " \n ", nil
		},
	}
	router, _ := newTestRouter(t, gen)

	rec := doRequest(t, router, http.MethodPost, "/api/instructions", map[string]interface{}{
		"meal":        "Toast",
		"ingredients": []string{"Bread"},
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "The AI returned an empty response", decodeError(t, rec).Error)
}

func TestNewRecipeHandler_NilLoggerPanics(t *testing.T) {
	assert.Panics(t, func() { NewRecipeHandler(&mocks.MockGenerator{}, nil) })
}
