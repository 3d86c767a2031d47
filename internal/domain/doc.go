// Package domain defines the core value types of the recipe service: the
// ingredients a user enters, the meal suggestions produced for them, and the
// cooking instructions generated for a chosen meal.
//
// All domain values are ephemeral. They are built once from a successful
// language model response and never updated or persisted.
package domain
