package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/recipe-ai/internal/domain"
	"github.com/phrazzld/recipe-ai/internal/task"
)

// mockGenerator implements generation.Generator with overridable behavior.
type mockGenerator struct {
	GenerateMealSuggestionsFn func(ctx context.Context, ingredients []string) ([]domain.MealSuggestion, error)
	GenerateInstructionsFn    func(ctx context.Context, meal string, ingredients []string) (string, error)
}

func (m *mockGenerator) GenerateMealSuggestions(
	ctx context.Context,
	ingredients []string,
) ([]domain.MealSuggestion, error) {
	return m.GenerateMealSuggestionsFn(ctx, ingredients)
}

func (m *mockGenerator) GenerateInstructions(ctx context.Context, meal string, ingredients []string) (string, error) {
	return m.GenerateInstructionsFn(ctx, meal, ingredients)
}

// goEnqueuer runs each task on its own goroutine.
type goEnqueuer struct {
	wg sync.WaitGroup
}

func (q *goEnqueuer) Enqueue(t task.Task) error {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		_ = t.Execute(context.Background())
	}()
	return nil
}

// errEnqueuer rejects every task.
type errEnqueuer struct {
	err error
}

func (q errEnqueuer) Enqueue(task.Task) error {
	return q.err
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustSuggestions(names ...string) []domain.MealSuggestion {
	out := make([]domain.MealSuggestion, 0, len(names))
	for _, name := range names {
		s, err := domain.NewMealSuggestion(name)
		if err != nil {
			panic(err)
		}
		out = append(out, s)
	}
	return out
}

func waitSettled[T any](slot *Slot[T]) SlotSnapshot[T] {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, _ := slot.Wait(ctx)
	return snap
}
