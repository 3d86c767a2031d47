package domain

import "strings"

// NormalizeIngredients trims every entry and drops the ones left empty.
// Order is preserved. Duplicates are kept; rejecting them is up to the caller.
func NormalizeIngredients(raw []string) []string {
	ingredients := make([]string, 0, len(raw))
	for _, entry := range raw {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}

// JoinIngredients renders an ingredient list the way it is embedded in prompts.
func JoinIngredients(ingredients []string) string {
	return strings.Join(ingredients, ", ")
}
