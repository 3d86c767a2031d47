// Package cli implements the recipe command-line client: one-shot suggestion
// and instruction commands plus an interactive flow that walks from an
// ingredient list to a chosen meal's instructions.
package cli
