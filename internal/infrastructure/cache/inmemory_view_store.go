package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
)

const defaultCleanupInterval = time.Minute

type sessionEntry struct {
	session   shared.ViewSession
	expiresAt time.Time
}

// InMemoryViewStateStore implements ViewStateStore using an in-memory map.
// Sessions are lost on restart and are not shared across instances.
type InMemoryViewStateStore struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]sessionEntry
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryViewStateStore creates a store and starts a background goroutine
// that evicts expired sessions every cleanupInterval (one minute when zero).
func NewInMemoryViewStateStore(cleanupInterval time.Duration) *InMemoryViewStateStore {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	s := &InMemoryViewStateStore{
		entries:  make(map[uuid.UUID]sessionEntry),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop(cleanupInterval)

	return s
}

// Save stores a copy of the session until ttl elapses
func (s *InMemoryViewStateStore) Save(_ context.Context, session *shared.ViewSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[session.ID] = sessionEntry{
		session:   *session,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Get returns a copy of a live session
func (s *InMemoryViewStateStore) Get(_ context.Context, id uuid.UUID) (*shared.ViewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, shared.ErrNotFound.WithMessage("View session not found or expired")
	}
	session := e.session
	return &session, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *InMemoryViewStateStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemoryViewStateStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// Size returns the number of stored sessions, expired ones included until evicted
func (s *InMemoryViewStateStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *InMemoryViewStateStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryViewStateStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

var _ shared.ViewStateStore = (*InMemoryViewStateStore)(nil)
