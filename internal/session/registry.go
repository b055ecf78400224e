package session

import (
	"context"

	"github.com/google/uuid"
)

// Registry resolves client session ids to Session objects backed by a Store.
type Registry struct {
	store Store
	opts  []Option
}

// NewRegistry builds a registry whose sessions are created with opts.
func NewRegistry(store Store, opts ...Option) *Registry {
	return &Registry{store: store, opts: opts}
}

// NewID returns a fresh client session id.
func (r *Registry) NewID() string {
	return uuid.NewString()
}

// Get returns the session for id. Unknown ids yield an unauthenticated session.
func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	s := New(r.opts...)
	if id == "" {
		return s, nil
	}
	identity, err := r.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.restore(identity)
	return s, nil
}

// Save persists the state of s under id. A logged-out session drops the binding.
func (r *Registry) Save(ctx context.Context, id string, s *Session) error {
	identity, ok := s.Identity()
	if !ok {
		return r.store.Delete(ctx, id)
	}
	return r.store.Save(ctx, id, identity)
}

// Active reports whether id still has a live binding. Unlike Get it does not
// extend the binding's TTL.
func (r *Registry) Active(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	return r.store.Exists(ctx, id)
}

// Sweep drops expired bindings from stores that keep them in process.
// Stores with native expiry report zero.
func (r *Registry) Sweep() int {
	if sweeper, ok := r.store.(interface{ Sweep() int }); ok {
		return sweeper.Sweep()
	}
	return 0
}

// Close closes the underlying store.
func (r *Registry) Close() error {
	return r.store.Close()
}
