package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/phrazzld/recipe-ai/internal/config"
	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from fixed scripts.
type scriptedPrompter struct {
	ingredients []string
	choices     []int
	confirms    []bool

	chooseLabels [][]string
}

func (p *scriptedPrompter) Ingredients() (string, error) {
	if len(p.ingredients) == 0 {
		return "", ErrCanceled
	}
	next := p.ingredients[0]
	p.ingredients = p.ingredients[1:]
	return next, nil
}

func (p *scriptedPrompter) Choose(label string, items []string) (int, error) {
	p.chooseLabels = append(p.chooseLabels, items)
	if len(p.choices) == 0 {
		return 0, ErrCanceled
	}
	next := p.choices[0]
	p.choices = p.choices[1:]
	return next, nil
}

func (p *scriptedPrompter) Confirm(label string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, ErrCanceled
	}
	next := p.confirms[0]
	p.confirms = p.confirms[1:]
	return next, nil
}

func runCommand(t *testing.T, gen generation.Generator, prompter Prompter, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	t.Setenv("RECIPEAI_LLM_GEMINI_API_KEY", "test-key")

	cmd := NewRootCommand(Options{
		NewGenerator: func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Generator, error) {
			assert.Equal(t, "test-key", cfg.LLM.GeminiAPIKey)
			return gen, nil
		},
		Prompter:  prompter,
		LogOutput: io.Discard,
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSuggestCommand(t *testing.T) {
	var got []string
	gen := &mocks.MockGenerator{
		GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
			got = ingredients
			return mocks.Suggestions("Chicken Fried Rice", "Garlic Rice Bowl"), nil
		},
	}

	out, err := runCommand(t, gen, nil, "suggest", "Chicken", "Rice, garlic ,")
	require.NoError(t, err)

	assert.Equal(t, []string{"Chicken", "Rice", "garlic"}, got)
	assert.Contains(t, out, " 1. Chicken Fried Rice")
	assert.Contains(t, out, " 2. Garlic Rice Bowl")
}

func TestSuggestCommand_Errors(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
			return nil, generation.ErrEmptyResponse
		},
	}

	out, err := runCommand(t, gen, nil, "suggest", "Egg")
	assert.ErrorIs(t, err, generation.ErrEmptyResponse)
	assert.Contains(t, out, "The AI returned an empty response")

	_, err = runCommand(t, gen, nil, "suggest", " , ")
	assert.ErrorIs(t, err, ErrNoIngredients)

	_, err = runCommand(t, gen, nil, "suggest")
	assert.Error(t, err, "at least one argument is required")
}

func TestInstructionsCommand(t *testing.T) {
	body := "1. Whisk eggs.\n2. Cook in butter."
	gen := &mocks.MockGenerator{
		GenerateInstructionsFn: func(ctx context.Context, meal string, ingredients []string) (string, error) {
			assert.Equal(t, "Omelette", meal)
			assert.Equal(t, []string{"Egg", "Butter"}, ingredients)
			return body, nil
		},
	}

	out, err := runCommand(t, gen, nil, "instructions", "--meal", " Omelette ", "Egg", "Butter")
	require.NoError(t, err)
	assert.Contains(t, out, "Omelette")
	assert.Contains(t, out, body)

	_, err = runCommand(t, gen, nil, "instructions", "Egg")
	assert.Error(t, err, "--meal is required")

	_, err = runCommand(t, gen, nil, "instructions", "--meal", "  ", "Egg")
	assert.Error(t, err)
}

func TestInstructionsCommand_APIError(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateInstructionsFn: func(ctx context.Context, meal string, ingredients []string) (string, error) {
			return "", generation.NewAPIError(errors.New("API key not valid"), 400, false)
		},
	}

	out, err := runCommand(t, gen, nil, "instructions", "-m", "Toast", "Bread")
	assert.ErrorIs(t, err, generation.ErrPermanentFailure)
	assert.Contains(t, out, "API error: API key not valid")
}

func TestRootCommand_GeneratorFailure(t *testing.T) {
	color.NoColor = true
	t.Setenv("RECIPEAI_LLM_GEMINI_API_KEY", "test-key")

	cmd := NewRootCommand(Options{
		NewGenerator: func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Generator, error) {
			return nil, generation.ErrInvalidConfig
		},
		LogOutput: io.Discard,
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"suggest", "Egg"})

	assert.ErrorIs(t, cmd.ExecuteContext(context.Background()), generation.ErrInvalidConfig)
}

func TestInteractive_HappyPath(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
			return mocks.Suggestions("Chicken Fried Rice", "Garlic Rice Bowl"), nil
		},
		GenerateInstructionsFn: func(ctx context.Context, meal string, ingredients []string) (string, error) {
			return "Steps for " + meal, nil
		},
	}
	prompter := &scriptedPrompter{
		ingredients: []string{"Chicken, Rice"},
		// pick the second meal, then quit
		choices: []int{1, 2},
	}

	out, err := runCommand(t, gen, prompter)
	require.NoError(t, err)

	assert.Contains(t, out, "Finding meals for Chicken, Rice...")
	assert.Contains(t, out, "Steps for Garlic Rice Bowl")
	assert.Contains(t, out, "Goodbye.")
	require.NotEmpty(t, prompter.chooseLabels)
	assert.Equal(t, []string{"Chicken Fried Rice", "Garlic Rice Bowl"}, prompter.chooseLabels[0])
}

func TestInteractive_RetryAfterFailure(t *testing.T) {
	attempts := 0
	gen := &mocks.MockGenerator{
		GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
			attempts++
			if attempts == 1 {
				return nil, generation.NewAPIError(errors.New("The model is overloaded."), 503, true)
			}
			return mocks.Suggestions("Frittata"), nil
		},
		GenerateInstructionsFn: func(ctx context.Context, meal string, ingredients []string) (string, error) {
			return "1. Bake.", nil
		},
	}
	prompter := &scriptedPrompter{
		ingredients: []string{"Egg"},
		confirms:    []bool{true},
		choices:     []int{0, 2},
	}

	out, err := runCommand(t, gen, prompter, "interactive")
	require.NoError(t, err)

	assert.Equal(t, 2, attempts)
	assert.Contains(t, out, "API error: The model is overloaded.")
	assert.Contains(t, out, "1. Bake.")
}

func TestInteractive_DeclineRetryStartsOver(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateMealSuggestionsFn: func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error) {
			return nil, generation.ErrEmptyResponse
		},
	}
	prompter := &scriptedPrompter{
		ingredients: []string{"Egg", "Flour"},
		confirms:    []bool{false, false},
	}

	out, err := runCommand(t, gen, prompter, "interactive")
	require.NoError(t, err)

	assert.Equal(t, 2, len(gen.SuggestionCalls()), "each ingredient list is tried once")
	assert.Contains(t, out, "Finding meals for Flour...")
}

func TestParseIngredients(t *testing.T) {
	got, err := parseIngredients([]string{"a, b", " c ", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, err = parseIngredients([]string{" , ,"})
	assert.ErrorIs(t, err, ErrNoIngredients)
}
