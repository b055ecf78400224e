package overlay

import "sync"

// Factory builds the default local state for freshly opened params.
type Factory[P, S any] func(params P) S

// Overlay is a modal-like sub-view with a Closed -> Open -> Closed lifecycle.
// Params are fixed for the duration of one open period; state is rebuilt by
// the factory on every Open and discarded on close.
type Overlay[P, S any] struct {
	mu      sync.Mutex
	factory Factory[P, S]
	open    bool
	params  P
	state   S
}

// New creates a closed overlay.
func New[P, S any](factory Factory[P, S]) *Overlay[P, S] {
	return &Overlay[P, S]{factory: factory}
}

// Open (re)opens the overlay with params and returns the fresh state.
// Reopening an already open overlay also resets it.
func (o *Overlay[P, S]) Open(params P) S {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.open = true
	o.params = params
	o.state = o.factory(params)
	return o.state
}

func (o *Overlay[P, S]) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}

// Params returns the params the overlay was opened with.
func (o *Overlay[P, S]) Params() (P, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.params, o.open
}

// State returns a copy of the local state.
func (o *Overlay[P, S]) State() (S, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state, o.open
}

// Update mutates local state while open. The mutation is applied to a copy
// and only committed when fn succeeds.
func (o *Overlay[P, S]) Update(fn func(params P, state *S) error) (S, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open {
		var zero S
		return zero, ErrClosed
	}
	next := o.state
	if err := fn(o.params, &next); err != nil {
		return o.state, err
	}
	o.state = next
	return o.state, nil
}

// Dismiss closes without completing. It reports whether the overlay was open.
func (o *Overlay[P, S]) Dismiss() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	wasOpen := o.open
	o.reset()
	return wasOpen
}

// Complete runs a terminal action against the current params and state. On
// success the overlay closes; on error it stays open and unchanged.
func (o *Overlay[P, S]) Complete(fn func(params P, state S) error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.open {
		return ErrClosed
	}
	if err := fn(o.params, o.state); err != nil {
		return err
	}
	o.reset()
	return nil
}

func (o *Overlay[P, S]) reset() {
	var (
		params P
		state  S
	)
	o.open = false
	o.params = params
	o.state = state
}
