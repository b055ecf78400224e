package overlay

import "sync"

// Registry keeps one Manager per client session.
type Registry struct {
	complete Completion

	mu       sync.Mutex
	managers map[string]*Manager
}

func NewRegistry(complete Completion) *Registry {
	return &Registry{complete: complete, managers: make(map[string]*Manager)}
}

// Get returns the session's manager, creating it on first use.
func (r *Registry) Get(sessionID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.managers[sessionID]
	if !ok {
		m = NewManager(sessionID, r.complete)
		r.managers[sessionID] = m
	}
	return m
}

// Drop closes and forgets the session's overlays.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	m, ok := r.managers[sessionID]
	delete(r.managers, sessionID)
	r.mu.Unlock()
	if ok {
		m.CloseAll()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.managers)
}

// IDs returns the session ids that currently own a manager.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.managers))
	for id := range r.managers {
		ids = append(ids, id)
	}
	return ids
}
