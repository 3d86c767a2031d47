package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/recipe-ai/internal/generation"
	"github.com/phrazzld/recipe-ai/internal/task"
)

// State is the lifecycle state of a Slot.
type State string

// Slot states
const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailed  State = "failed"
)

// Enqueuer accepts work for asynchronous execution. *task.TaskQueue satisfies it.
type Enqueuer interface {
	Enqueue(t task.Task) error
}

// RequestFunc produces a slot's data.
type RequestFunc[T any] func(ctx context.Context) (T, error)

// SlotSnapshot is a point-in-time copy of a Slot.
type SlotSnapshot[T any] struct {
	State      State     `json:"state"`
	Data       *T        `json:"data,omitempty"`
	Error      string    `json:"error,omitempty"`
	Generation uint64    `json:"generation"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Err is the underlying failure; it is not serialized.
	Err error `json:"-"`
}

// Slot tracks one in-flight request and its outcome.
type Slot[T any] struct {
	name     string
	taskType string
	queue    Enqueuer
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	state      State
	data       *T
	err        error
	generation uint64
	cancel     context.CancelFunc
	last       RequestFunc[T]
	updatedAt  time.Time
	changed    chan struct{}
}

// NewSlot creates an idle slot whose work is submitted to queue.
func NewSlot[T any](name, taskType string, queue Enqueuer, logger *slog.Logger) *Slot[T] {
	return newSlot[T](name, taskType, queue, logger, time.Now)
}

func newSlot[T any](name, taskType string, queue Enqueuer, logger *slog.Logger, now func() time.Time) *Slot[T] {
	return &Slot[T]{
		name:      name,
		taskType:  taskType,
		queue:     queue,
		logger:    logger.With("slot", name),
		now:       now,
		state:     StateIdle,
		updatedAt: now(),
		changed:   make(chan struct{}),
	}
}

// Name returns the slot name.
func (s *Slot[T]) Name() string {
	return s.name
}

// Start supersedes any in-flight request and submits fn. It returns the new
// generation. If the work cannot be queued the slot moves to Failed and the
// queue error is returned.
func (s *Slot[T]) Start(fn RequestFunc[T]) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.startLocked(fn)
}

// Retry re-submits the last request. It is only valid from Failed.
func (s *Slot[T]) Retry() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFailed {
		return 0, fmt.Errorf("%w: slot %s is %s", ErrNotFailed, s.name, s.state)
	}
	if s.last == nil {
		return 0, ErrNoRequest
	}

	s.logger.Info("retrying request", "previous_generation", s.generation)
	return s.startLocked(s.last)
}

// Cancel aborts any in-flight request. A canceled request commits nothing and
// the slot returns to Idle.
func (s *Slot[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.state == StateLoading {
		s.setLocked(StateIdle, nil, nil)
	}
}

// Snapshot returns the current state of the slot.
func (s *Slot[T]) Snapshot() SlotSnapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Wait blocks until the slot is not Loading or ctx is done.
func (s *Slot[T]) Wait(ctx context.Context) (SlotSnapshot[T], error) {
	for {
		s.mu.Lock()
		snap := s.snapshotLocked()
		changed := s.changed
		s.mu.Unlock()

		if snap.State != StateLoading {
			return snap, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return snap, ctx.Err()
		}
	}
}

func (s *Slot[T]) startLocked(fn RequestFunc[T]) (uint64, error) {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.generation++
	gen := s.generation
	s.last = fn

	s.setLocked(StateLoading, nil, nil)

	work := task.NewFuncTask(s.taskType, func(ctx context.Context) error {
		return s.run(ctx, gen, fn)
	})

	if err := s.queue.Enqueue(work); err != nil {
		s.logger.Warn("failed to enqueue request", "generation", gen, "error", err)
		s.setLocked(StateFailed, nil, fmt.Errorf("%w: %v", ErrBusy, err))
		return gen, err
	}

	s.logger.Debug("request started", "generation", gen, "task_id", work.ID())
	return gen, nil
}

// run executes fn for generation gen and commits the outcome if gen is still current.
func (s *Slot[T]) run(ctx context.Context, gen uint64, fn RequestFunc[T]) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !s.bind(gen, cancel) {
		s.logger.Debug("skipping superseded request", "generation", gen)
		return nil
	}

	data, err := fn(ctx)
	s.commit(gen, data, err)

	if err != nil && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// bind registers the cancel func of a starting request. It reports false if
// the request has already been superseded.
func (s *Slot[T]) bind(gen uint64, cancel context.CancelFunc) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.cancel = cancel
	return true
}

func (s *Slot[T]) commit(gen uint64, data T, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("discarding stale result",
			"generation", gen,
			"current_generation", s.generation)
		return
	}
	s.cancel = nil

	if err != nil {
		s.logger.Info("request failed", "generation", gen, "error_kind", errorKind(err))
		s.setLocked(StateFailed, nil, err)
		return
	}

	s.logger.Debug("request succeeded", "generation", gen)
	s.setLocked(StateSuccess, &data, nil)
}

func (s *Slot[T]) setLocked(state State, data *T, err error) {
	s.state = state
	s.data = data
	s.err = err
	s.updatedAt = s.now()

	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Slot[T]) snapshotLocked() SlotSnapshot[T] {
	snap := SlotSnapshot[T]{
		State:      s.state,
		Generation: s.generation,
		UpdatedAt:  s.updatedAt,
		Err:        s.err,
	}
	if s.data != nil {
		data := *s.data
		snap.Data = &data
	}
	if s.err != nil {
		snap.Error = FailureMessage(s.err)
	}
	return snap
}

// FailureMessage returns the user-facing description of a slot failure.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrBusy):
		return ErrBusy.Error()
	case errors.Is(err, context.Canceled):
		return "Request was canceled"
	default:
		return generation.UserMessage(err)
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, generation.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, generation.ErrContentBlocked):
		return "content_blocked"
	case errors.Is(err, generation.ErrTransientFailure):
		return "transient"
	case errors.Is(err, generation.ErrPermanentFailure):
		return "permanent"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "unknown"
	}
}
