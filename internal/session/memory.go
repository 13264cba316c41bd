package session

import (
	"context"
	"sync"
	"time"

	"cyberstudy/portal/internal/models"
)

// MemoryStore keeps sessions in-process. Fits the single-instance deployment;
// sessions do not survive a restart. Expired entries linger until read or
// until PurgeExpired runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.SessionState)}
}

func (s *MemoryStore) Put(_ context.Context, token string, state models.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = state
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (models.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[token]
	if !ok {
		return models.SessionState{}, ErrSessionNotFound
	}
	return state, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// PurgeExpired drops expired entries and reports how many were removed.
func (s *MemoryStore) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, state := range s.sessions {
		if state.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
