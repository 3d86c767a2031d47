package domain

import "errors"

// Common domain errors
var (
	// ErrEmptyMealName is returned when a meal suggestion has no name after trimming
	ErrEmptyMealName = errors.New("meal name cannot be empty")

	// ErrEmptyInstructions is returned when recipe instructions have an empty body
	ErrEmptyInstructions = errors.New("instructions cannot be empty")
)
