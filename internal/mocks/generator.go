package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/generation"
)

// GeneratorCall records the arguments of one generator call.
type GeneratorCall struct {
	// Meal is empty for suggestion calls
	Meal        string
	Ingredients []string
}

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateMealSuggestionsFn allows test cases to mock GenerateMealSuggestions
	GenerateMealSuggestionsFn func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error)

	// GenerateInstructionsFn allows test cases to mock GenerateInstructions
	GenerateInstructionsFn func(ctx context.Context, meal string, ingredients []string) (string, error)

	// Default response values
	Suggestions  []domain.MealSuggestion
	Instructions string
	Err          error

	// mu protects the call tracking state for concurrent test cases
	mu               sync.Mutex
	suggestionCalls  []GeneratorCall
	instructionCalls []GeneratorCall
}

// GenerateMealSuggestions implements the generation.Generator interface
func (m *MockGenerator) GenerateMealSuggestions(
	ctx context.Context,
	ingredients []string,
) ([]domain.MealSuggestion, error) {
	m.mu.Lock()
	m.suggestionCalls = append(m.suggestionCalls, GeneratorCall{Ingredients: copyStrings(ingredients)})
	m.mu.Unlock()

	if m.GenerateMealSuggestionsFn != nil {
		return m.GenerateMealSuggestionsFn(ctx, ingredients)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Suggestions, nil
}

// GenerateInstructions implements the generation.Generator interface
func (m *MockGenerator) GenerateInstructions(ctx context.Context, meal string, ingredients []string) (string, error) {
	m.mu.Lock()
	m.instructionCalls = append(m.instructionCalls, GeneratorCall{Meal: meal, Ingredients: copyStrings(ingredients)})
	m.mu.Unlock()

	if m.GenerateInstructionsFn != nil {
		return m.GenerateInstructionsFn(ctx, meal, ingredients)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Instructions, nil
}

// SuggestionCalls returns the recorded GenerateMealSuggestions calls.
func (m *MockGenerator) SuggestionCalls() []GeneratorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GeneratorCall(nil), m.suggestionCalls...)
}

// InstructionCalls returns the recorded GenerateInstructions calls.
func (m *MockGenerator) InstructionCalls() []GeneratorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GeneratorCall(nil), m.instructionCalls...)
}

// CallCount returns the total number of calls of either method.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.suggestionCalls) + len(m.instructionCalls)
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suggestionCalls = nil
	m.instructionCalls = nil
}

// NewMockGeneratorWithSuggestions creates a MockGenerator that suggests the
// given meal names and returns a short body for any instructions request.
func NewMockGeneratorWithSuggestions(names ...string) *MockGenerator {
	return &MockGenerator{
		Suggestions:  Suggestions(names...),
		Instructions: "1. Prepare the ingredients.\n2. Cook until done.",
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorWithEmptyResponse simulates a reply without usable text
func MockGeneratorWithEmptyResponse() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrEmptyResponse)
}

// MockGeneratorWithTransientFailure simulates a retryable provider failure
func MockGeneratorWithTransientFailure(message string) *MockGenerator {
	return NewMockGeneratorWithError(&generation.APIError{Message: message, Code: 503, Transient: true})
}

// MockGeneratorWithContentBlocked simulates a safety block
func MockGeneratorWithContentBlocked() *MockGenerator {
	return NewMockGeneratorWithError(generation.NewAPIError(generation.ErrContentBlocked, 0, false))
}

// Suggestions builds meal suggestions from names, skipping blank ones.
func Suggestions(names ...string) []domain.MealSuggestion {
	out := make([]domain.MealSuggestion, 0, len(names))
	for _, name := range names {
		s, err := domain.NewMealSuggestion(name)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
