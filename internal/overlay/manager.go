package overlay

import (
	"context"
	"fmt"
	"sync"
)

// Completion receives the outcome of an action that produced a result.
// Terminal actions always produce one; the overlay is already closed when it
// runs.
type Completion func(ctx context.Context, result Result)

// Manager holds one instance of every overlay kind for a client session.
type Manager struct {
	sessionID string
	complete  Completion

	mu        sync.Mutex
	instances map[Kind]instance
}

// NewManager creates closed overlays for sessionID. complete may be nil.
func NewManager(sessionID string, complete Completion) *Manager {
	return &Manager{
		sessionID: sessionID,
		complete:  complete,
		instances: newInstances(),
	}
}

func (m *Manager) lookup(kind Kind) (instance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inst, ok := m.instances[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	return inst, nil
}

// Open opens kind with params; an absent identifying param yields the empty
// default state.
func (m *Manager) Open(kind Kind, params Fields) (Snapshot, error) {
	inst, err := m.lookup(kind)
	if err != nil {
		return Snapshot{}, err
	}
	return inst.open(params), nil
}

func (m *Manager) Get(kind Kind) (Snapshot, error) {
	inst, err := m.lookup(kind)
	if err != nil {
		return Snapshot{}, err
	}
	return inst.snapshot(), nil
}

// Update edits local state fields of an open overlay.
func (m *Manager) Update(kind Kind, fields Fields) (Snapshot, error) {
	inst, err := m.lookup(kind)
	if err != nil {
		return Snapshot{}, err
	}
	return inst.update(fields)
}

// Act runs a named action and forwards any result to the completion callback.
func (m *Manager) Act(ctx context.Context, kind Kind, action string, input Fields) (Snapshot, *Result, error) {
	inst, err := m.lookup(kind)
	if err != nil {
		return Snapshot{}, nil, err
	}
	snap, res, err := inst.act(action, input)
	if err != nil || res == nil {
		return snap, nil, err
	}
	res.SessionID = m.sessionID
	if m.complete != nil {
		m.complete(ctx, *res)
	}
	return snap, res, nil
}

// Dismiss closes kind without completing.
func (m *Manager) Dismiss(kind Kind) (Snapshot, error) {
	inst, err := m.lookup(kind)
	if err != nil {
		return Snapshot{}, err
	}
	inst.dismiss()
	return inst.snapshot(), nil
}

// Opened returns snapshots of every open overlay in Kinds order.
func (m *Manager) Opened() []Snapshot {
	var out []Snapshot
	for _, kind := range Kinds {
		inst, err := m.lookup(kind)
		if err != nil {
			continue
		}
		if snap := inst.snapshot(); snap.Open {
			out = append(out, snap)
		}
	}
	return out
}

// CloseAll dismisses every overlay.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inst := range m.instances {
		inst.dismiss()
	}
}
