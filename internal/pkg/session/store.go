package session

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when no live session matches the identifier
var ErrNotFound = errors.New("session not found")

// Store defines how sessions are stored and retrieved. The store owns
// the expiry policy: Get never returns an expired session.
type Store interface {
	Create(s *Session) error
	Get(id string) (*Session, error)
	Touch(id string, ttl time.Duration) error
	Delete(id string) error
	DeleteExpired() int
}

// InMemoryStore is a map-backed Store safe for concurrent use.
// Sessions live in process memory only; no multi-node replication.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewInMemoryStore creates an empty in-memory session store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*Session),
	}
}

// Create stores a new session keyed by its ID
func (st *InMemoryStore) Create(s *Session) error {
	if s.ID == "" {
		return errors.New("session id is required")
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	copied := *s
	st.sessions[s.ID] = &copied
	return nil
}

// Get retrieves a live session by ID. Expired sessions are removed
// lazily and reported as not found.
func (st *InMemoryStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	if !ok {
		st.mu.RUnlock()
		return nil, ErrNotFound
	}

	// Expiry check and copy stay under the read lock so a concurrent
	// Touch cannot write ExpiresAt mid-read.
	expired := s.IsExpired()
	copied := *s
	st.mu.RUnlock()

	if expired {
		st.mu.Lock()
		// Re-check under the write lock: the session may have been
		// touched or replaced since the read lock was dropped.
		if cur, ok := st.sessions[id]; ok && cur.IsExpired() {
			delete(st.sessions, id)
		}
		st.mu.Unlock()
		return nil, ErrNotFound
	}

	return &copied, nil
}

// Touch extends a session's idle lifetime by ttl from now
func (st *InMemoryStore) Touch(id string, ttl time.Duration) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrNotFound
	}

	s.ExpiresAt = time.Now().Add(ttl)
	return nil
}

// Delete removes a session. Deleting an absent session is a no-op.
func (st *InMemoryStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
	return nil
}

// DeleteExpired sweeps expired sessions and returns how many were removed
func (st *InMemoryStore) DeleteExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.IsExpired() {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored sessions, expired ones included
func (st *InMemoryStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
