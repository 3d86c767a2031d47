// Package testutils provides helpers shared by tests across the application.
//
// Live tests against the Gemini API are opt-in. They are compiled only with
// the integration build tag and run only when RECIPEAI_TEST_GEMINI_API_KEY is
// set:
//
//	RECIPEAI_TEST_GEMINI_API_KEY=... go test -tags=integration ./internal/platform/gemini/...
package testutils
