// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for suggesting meals and writing cooking
// instructions from an ingredient list.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain logic to Google's external Gemini AI service.
// It translates between the application's domain models and the Gemini API
// without exposing the details of the external service to the core application.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Is constructed explicitly and injected; there is no shared client
//   - Talks to the API through the narrow ContentGenerator interface so tests
//     can substitute a fake
//
// 2. Response Processing:
//   - Extracts text from the first candidate, skipping thought parts
//   - Maps missing text to generation.ErrEmptyResponse
//   - Maps safety blocks to a permanent generation.APIError
//
// 3. Error Handling:
//   - Classifies provider failures as transient (rate limits, overload,
//     timeouts) or permanent (bad key, bad request)
//   - Retries transient failures with bounded exponential backoff and jitter
package gemini
