package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/task"
)

// Slot names
const (
	SlotSuggestions  = "suggestions"
	SlotInstructions = "instructions"
)

// Session pairs the suggestion and instruction flows of one client.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	Suggestions  *Slot[[]domain.MealSuggestion]
	Instructions *Slot[domain.RecipeInstructions]

	generator generation.Generator
	now       func() time.Time

	mu         sync.Mutex
	lastAccess time.Time
}

// Snapshot is a serializable view of a Session.
type Snapshot struct {
	ID           uuid.UUID                               `json:"id"`
	CreatedAt    time.Time                               `json:"created_at"`
	Suggestions  SlotSnapshot[[]domain.MealSuggestion]   `json:"suggestions"`
	Instructions SlotSnapshot[domain.RecipeInstructions] `json:"instructions"`
}

// New creates a session whose requests run through generator on queue.
func New(generator generation.Generator, queue Enqueuer, logger *slog.Logger) *Session {
	return newSession(uuid.New(), generator, queue, logger, time.Now)
}

func newSession(
	id uuid.UUID,
	generator generation.Generator,
	queue Enqueuer,
	logger *slog.Logger,
	now func() time.Time,
) *Session {
	logger = logger.With("session_id", id)
	created := now()

	return &Session{
		ID:        id,
		CreatedAt: created,
		Suggestions: newSlot[[]domain.MealSuggestion](
			SlotSuggestions, task.TaskTypeSuggestions, queue, logger, now),
		Instructions: newSlot[domain.RecipeInstructions](
			SlotInstructions, task.TaskTypeInstructions, queue, logger, now),
		generator:  generator,
		now:        now,
		lastAccess: created,
	}
}

// RequestSuggestions starts a suggestion request for ingredients,
// superseding any request already in flight.
func (s *Session) RequestSuggestions(ingredients []string) error {
	s.Touch()
	ingredients = domain.NormalizeIngredients(ingredients)

	_, err := s.Suggestions.Start(func(ctx context.Context) ([]domain.MealSuggestion, error) {
		return s.generator.GenerateMealSuggestions(ctx, ingredients)
	})
	return err
}

// RequestInstructions starts an instruction request for meal,
// superseding any request already in flight.
func (s *Session) RequestInstructions(meal string, ingredients []string) error {
	s.Touch()
	ingredients = domain.NormalizeIngredients(ingredients)

	_, err := s.Instructions.Start(func(ctx context.Context) (domain.RecipeInstructions, error) {
		body, err := s.generator.GenerateInstructions(ctx, meal, ingredients)
		if err != nil {
			return domain.RecipeInstructions{}, err
		}
		recipe, err := domain.NewRecipeInstructions(meal, ingredients, body)
		if err != nil {
			return domain.RecipeInstructions{}, generation.ErrEmptyResponse
		}
		return recipe, nil
	})
	return err
}

// Retry re-runs the last request of the named slot. The slot must be Failed.
func (s *Session) Retry(slot string) error {
	s.Touch()

	var err error
	switch slot {
	case SlotSuggestions:
		_, err = s.Suggestions.Retry()
	case SlotInstructions:
		_, err = s.Instructions.Retry()
	default:
		return ErrUnknownSlot
	}
	return err
}

// Snapshot returns the current state of both slots.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		Suggestions:  s.Suggestions.Snapshot(),
		Instructions: s.Instructions.Snapshot(),
	}
}

// Close cancels any in-flight requests.
func (s *Session) Close() {
	s.Suggestions.Cancel()
	s.Instructions.Cancel()
}

// Touch records activity on the session.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastAccess = s.now()
	s.mu.Unlock()
}

// LastAccess returns the time of the most recent activity.
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}
