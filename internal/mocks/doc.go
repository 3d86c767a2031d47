// Package mocks provides shared mock implementations for testing.
//
// Mocks use function fields for per-test behavior and fall back to fixed
// default values when no function is set. Calls are recorded so tests can
// assert on the inputs a component passed through:
//
//	gen := mocks.NewMockGeneratorWithSuggestions("Omelette", "Frittata")
//	suggestions, err := gen.GenerateMealSuggestions(ctx, []string{"Egg"})
//	// gen.CallCount() == 1
package mocks
