package generation

import (
	"errors"
	"strings"

	"github.com/phrazzld/recipe-ai/internal/domain"
)

// ParseSuggestions splits a suggestion response into meal suggestions, one
// per non-blank line, in response order. Lines are trimmed; duplicates are
// kept and the count is not checked against SuggestionCount.
//
// A response with no non-blank lines fails with ErrEmptyResponse.
func ParseSuggestions(text string) ([]domain.MealSuggestion, error) {
	lines := strings.FieldsFunc(text, isLineBreak)

	suggestions := make([]domain.MealSuggestion, 0, len(lines))
	for _, line := range lines {
		suggestion, err := domain.NewMealSuggestion(line)
		if errors.Is(err, domain.ErrEmptyMealName) {
			continue
		}
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, suggestion)
	}

	if len(suggestions) == 0 {
		return nil, ErrEmptyResponse
	}

	return suggestions, nil
}

// isLineBreak reports whether r ends a line
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
