package overlay

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/spec-kit/bank-crm/internal/events"
)

// Fields carries loosely typed input for open params, updates and actions.
type Fields map[string]string

// Get returns the trimmed value for key.
func (f Fields) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// Result is the structured payload handed to the completion callback.
type Result struct {
	SessionID string           `json:"session_id"`
	Kind      Kind             `json:"kind"`
	Action    string           `json:"action"`
	Event     events.EventType `json:"event"`
	Subject   string           `json:"subject,omitempty"`
	Terminal  bool             `json:"terminal"`
	Payload   any              `json:"payload"`
}

// Snapshot is the serializable view of one overlay.
type Snapshot struct {
	Kind    Kind `json:"kind"`
	Open    bool `json:"open"`
	Params  any  `json:"params,omitempty"`
	State   any  `json:"state,omitempty"`
	Options any  `json:"options,omitempty"`
}

type setter[S any] func(state *S, value string) error

type handler[P, S any] struct {
	terminal bool
	// run returns nil when the action had nothing to report.
	run func(params P, state *S, input Fields) (*Result, error)
}

type definition[P, S any] struct {
	kind    Kind
	params  func(Fields) P
	factory Factory[P, S]
	fields  map[string]setter[S]
	actions map[string]handler[P, S]
	options any
}

// instance erases the type parameters so the manager can hold every kind.
type instance interface {
	kind() Kind
	open(params Fields) Snapshot
	snapshot() Snapshot
	update(fields Fields) (Snapshot, error)
	act(action string, input Fields) (Snapshot, *Result, error)
	dismiss() bool
}

type binding[P, S any] struct {
	def     definition[P, S]
	overlay *Overlay[P, S]
}

func bind[P, S any](def definition[P, S]) instance {
	return &binding[P, S]{def: def, overlay: New(def.factory)}
}

func (b *binding[P, S]) kind() Kind { return b.def.kind }

func (b *binding[P, S]) open(params Fields) Snapshot {
	b.overlay.Open(b.def.params(params))
	return b.snapshot()
}

func (b *binding[P, S]) snapshot() Snapshot {
	snap := Snapshot{Kind: b.def.kind, Options: b.def.options}
	params, open := b.overlay.Params()
	state, _ := b.overlay.State()
	if open {
		snap.Open = true
		snap.Params = params
		snap.State = state
	}
	return snap
}

// apply sets input on state in key order, so a form reset such as
// show_add_user=false always lands after the form fields. Keys that are
// neither fields nor listed in extra are rejected.
func apply[S any](kind Kind, fields map[string]setter[S], state *S, input Fields, extra ...string) error {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		set, ok := fields[key]
		if !ok {
			if lo.Contains(extra, key) {
				continue
			}
			return fmt.Errorf("%s.%s: %w", kind, key, ErrUnknownField)
		}
		if err := set(state, input[key]); err != nil {
			return fmt.Errorf("%s.%s: %w", kind, key, err)
		}
	}
	return nil
}

func (b *binding[P, S]) update(fields Fields) (Snapshot, error) {
	_, err := b.overlay.Update(func(_ P, state *S) error {
		return apply(b.def.kind, b.def.fields, state, fields)
	})
	if err != nil {
		return b.snapshot(), err
	}
	return b.snapshot(), nil
}

func (b *binding[P, S]) act(action string, input Fields) (Snapshot, *Result, error) {
	h, ok := b.def.actions[action]
	if !ok {
		return b.snapshot(), nil, fmt.Errorf("%s/%s: %w", b.def.kind, action, ErrUnknownAction)
	}

	var res *Result
	var err error
	if h.terminal {
		err = b.overlay.Complete(func(params P, state S) error {
			var runErr error
			res, runErr = h.run(params, &state, input)
			return runErr
		})
	} else {
		_, err = b.overlay.Update(func(params P, state *S) error {
			var runErr error
			res, runErr = h.run(params, state, input)
			return runErr
		})
	}
	if err != nil {
		return b.snapshot(), nil, err
	}
	if res != nil {
		res.Kind = b.def.kind
		res.Action = action
		res.Terminal = h.terminal
	}
	return b.snapshot(), res, nil
}

func (b *binding[P, S]) dismiss() bool {
	return b.overlay.Dismiss()
}

// oneOf validates value against the allowed set; empty clears the field.
func oneOf(value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, candidate := range allowed {
		if candidate == value {
			return nil
		}
	}
	return fmt.Errorf("%q: %w", value, ErrInvalidInput)
}

func parseBool(value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%q: %w", value, ErrInvalidInput)
	}
	return b, nil
}
