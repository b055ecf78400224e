package chatbot

import "sync"

// Registry owns one widget per client session.
type Registry struct {
	mu      sync.Mutex
	widgets map[string]*Widget
	opts    []WidgetOption
}

// NewRegistry creates widgets lazily with opts.
func NewRegistry(opts ...WidgetOption) *Registry {
	return &Registry{widgets: make(map[string]*Widget), opts: opts}
}

// Get returns the widget for id, creating it on first use.
func (r *Registry) Get(id string) *Widget {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.widgets[id]; ok {
		return w
	}
	w := NewWidget(r.opts...)
	r.widgets[id] = w
	return w
}

// Destroy tears down the widget for id; pending replies are cancelled.
func (r *Registry) Destroy(id string) {
	r.mu.Lock()
	w, ok := r.widgets[id]
	delete(r.widgets, id)
	r.mu.Unlock()
	if ok {
		w.Destroy()
	}
}

// Len returns the number of live widgets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.widgets)
}

// IDs returns the session ids that currently own a widget.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.widgets))
	for id := range r.widgets {
		ids = append(ids, id)
	}
	return ids
}

// Shutdown destroys every widget.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	widgets := r.widgets
	r.widgets = make(map[string]*Widget)
	r.mu.Unlock()
	for _, w := range widgets {
		w.Destroy()
	}
}
