package testutils

import (
	"os"
	"strings"
	"testing"
)

// Environment variables read by tests
const (
	EnvTestGeminiAPIKey = "RECIPEAI_TEST_GEMINI_API_KEY"
	EnvTestGeminiModel  = "RECIPEAI_TEST_GEMINI_MODEL"
	EnvCI               = "CI"
	EnvGitHubActions    = "GITHUB_ACTIONS"
)

// IsIntegrationTestEnvironment returns true if a Gemini API key is configured
// for live tests.
func IsIntegrationTestEnvironment() bool {
	return strings.TrimSpace(os.Getenv(EnvTestGeminiAPIKey)) != ""
}

// IsCI returns true if the tests run under a CI provider.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" || os.Getenv(EnvGitHubActions) != ""
}

// GetTestGeminiAPIKey returns the API key for live tests. The test is skipped
// when no key is configured.
func GetTestGeminiAPIKey(t *testing.T) string {
	t.Helper()

	key := strings.TrimSpace(os.Getenv(EnvTestGeminiAPIKey))
	if key == "" {
		t.Skipf("%s not set; skipping live Gemini test", EnvTestGeminiAPIKey)
	}
	return key
}

// GetTestGeminiModel returns the model for live tests, or fallback when unset.
func GetTestGeminiModel(fallback string) string {
	if model := strings.TrimSpace(os.Getenv(EnvTestGeminiModel)); model != "" {
		return model
	}
	return fallback
}
