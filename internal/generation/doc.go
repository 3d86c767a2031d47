// Package generation defines the boundary between the recipe service and the
// external language model (Gemini). It owns the Generator interface, the
// prompt templates used for meal suggestions and cooking instructions, the
// parser that turns a suggestion response into domain.MealSuggestion values,
// and the error taxonomy every Generator implementation reports through.
package generation
