// Package session holds the current authenticated identity of a CRM client.
package session

import (
	"sync"

	"github.com/spec-kit/bank-crm/internal/domain"
)

// Verifier checks a credential pair on top of the presence check.
type Verifier interface {
	Verify(email, password string) bool
}

// Option configures a Session.
type Option func(*Session)

// WithVerifier enables strict credential checking.
func WithVerifier(v Verifier) Option {
	return func(s *Session) {
		s.verifier = v
	}
}

// Session holds at most one current identity.
// The zero value is not usable; construct with New.
type Session struct {
	mu       sync.RWMutex
	identity *domain.Identity
	verifier Verifier
}

// New returns an unauthenticated session.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login binds the canned identity for role when email and password are both
// non-empty. Any non-empty pair is accepted unless a Verifier is configured.
// On failure the current identity is left untouched.
func (s *Session) Login(email, password string, role domain.Role) bool {
	if email == "" || password == "" {
		return false
	}
	identity, ok := CannedIdentity(role)
	if !ok {
		return false
	}
	if s.verifier != nil && !s.verifier.Verify(email, password) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	return true
}

// Logout clears the current identity. Calling it while logged out is a no-op.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
}

// Identity returns a copy of the current identity.
func (s *Session) Identity() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

// IsAuthenticated reports whether an identity is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// restore rebinds a previously persisted identity.
func (s *Session) restore(identity *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if identity == nil {
		s.identity = nil
		return
	}
	cp := *identity
	s.identity = &cp
}
