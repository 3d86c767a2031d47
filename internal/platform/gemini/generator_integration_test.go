//go:build integration

package gemini_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/recipe-ai/internal/config"
	"github.com/phrazzld/recipe-ai/internal/platform/gemini"
	"github.com/phrazzld/recipe-ai/internal/platform/logger"
	"github.com/phrazzld/recipe-ai/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerator_Live(t *testing.T) {
	key := testutils.GetTestGeminiAPIKey(t)
	log, _ := logger.NewTestLogger(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen, err := gemini.NewGeminiGenerator(ctx, log, config.LLMConfig{
		GeminiAPIKey:          key,
		ModelName:             testutils.GetTestGeminiModel(gemini.DefaultModel),
		MaxRetries:            2,
		RetryDelaySeconds:     2,
		RequestTimeoutSeconds: 60,
	})
	require.NoError(t, err)

	ingredients := []string{"Chicken", "Rice", "Garlic"}

	suggestions, err := gen.GenerateMealSuggestions(ctx, ingredients)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.NotEmpty(t, s.Name)
	}

	body, err := gen.GenerateInstructions(ctx, suggestions[0].Name, ingredients)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
