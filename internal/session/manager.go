package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/recipe-ai/internal/generation"
)

// DefaultTTL is used when ManagerConfig.TTL is not positive.
const DefaultTTL = 30 * time.Minute

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// TTL is how long a session may stay idle before it is evicted
	TTL time.Duration
}

// Manager is an in-memory registry of sessions.
type Manager struct {
	generator generation.Generator
	queue     Enqueuer
	logger    *slog.Logger
	ttl       time.Duration
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a Manager whose sessions run requests through generator.
func NewManager(generator generation.Generator, queue Enqueuer, cfg ManagerConfig, logger *slog.Logger) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		generator: generator,
		queue:     queue,
		logger:    logger.With("component", "session_manager"),
		ttl:       ttl,
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Create registers a new session.
func (m *Manager) Create() *Session {
	s := newSession(uuid.New(), m.generator, m.queue, m.logger, m.now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.Info("session created", "session_id", s.ID, "session_count", count)
	return s
}

// Get returns the session with id and records the access.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || m.expired(s, m.now()) {
		return nil, ErrSessionNotFound
	}

	s.Touch()
	return s, nil
}

// Delete removes the session with id and cancels its in-flight work.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.Close()
	m.logger.Info("session deleted", "session_id", id)
	return nil
}

// Sweep evicts sessions idle longer than the TTL and returns how many were removed.
func (m *Manager) Sweep() int {
	now := m.now()

	var evicted []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if m.expired(s, now) {
			evicted = append(evicted, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range evicted {
		s.Close()
	}

	if len(evicted) > 0 {
		m.logger.Info("expired sessions evicted", "count", len(evicted))
	}
	return len(evicted)
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// CloseAll cancels the work of every session and empties the registry.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return now.Sub(s.LastAccess()) > m.ttl
}
