package session

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/bank-crm/internal/domain"
)

// Store persists the identity bound to each client session id.
// Bindings expire after a sliding TTL.
type Store interface {
	// Save binds identity to id, replacing any previous binding.
	Save(ctx context.Context, id string, identity domain.Identity) error

	// Load returns the identity bound to id and refreshes its TTL.
	// Returns nil if nothing is bound (not an error).
	Load(ctx context.Context, id string) (*domain.Identity, error)

	// Exists reports whether id is still bound without refreshing its TTL.
	Exists(ctx context.Context, id string) (bool, error)

	// Delete removes the binding for id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}

type memoryEntry struct {
	identity  domain.Identity
	expiresAt time.Time
}

// MemoryStore keeps bindings in process memory. A restart forgets every session.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory store. A non-positive ttl
// selects the default.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryStore{ttl: ttl, now: time.Now, sessions: make(map[string]memoryEntry)}
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, id string, identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		return ErrStoreClosed
	}
	s.sessions[id] = memoryEntry{identity: identity, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Load implements Store. Expired bindings are removed.
func (s *MemoryStore) Load(_ context.Context, id string) (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	now := s.now()
	if !now.Before(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, nil
	}
	entry.expiresAt = now.Add(s.ttl)
	s.sessions[id] = entry
	identity := entry.identity
	return &identity, nil
}

// Exists implements Store.
func (s *MemoryStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	return ok && s.now().Before(entry.expiresAt), nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Sweep drops every expired binding and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored bindings, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = nil
	return nil
}
