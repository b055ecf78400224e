package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testParams struct{ ID string }

type testState struct {
	ID    string
	Draft string
}

func newTestOverlay(calls *int) *Overlay[testParams, testState] {
	return New(func(p testParams) testState {
		*calls++
		return testState{ID: p.ID}
	})
}

func TestOverlay_StartsClosed(t *testing.T) {
	req := require.New(t)
	calls := 0
	o := newTestOverlay(&calls)

	req.False(o.IsOpen())
	_, open := o.State()
	req.False(open)
	req.Zero(calls)

	_, err := o.Update(func(testParams, *testState) error { return nil })
	req.ErrorIs(err, ErrClosed)
	req.ErrorIs(o.Complete(func(testParams, testState) error { return nil }), ErrClosed)
	req.False(o.Dismiss())
}

func TestOverlay_OpenBuildsFreshState(t *testing.T) {
	req := require.New(t)
	calls := 0
	o := newTestOverlay(&calls)

	state := o.Open(testParams{ID: "L001"})
	req.Equal("L001", state.ID)
	req.Equal(1, calls)

	_, err := o.Update(func(_ testParams, s *testState) error {
		s.Draft = "typed"
		return nil
	})
	req.NoError(err)

	req.True(o.Dismiss())
	req.False(o.IsOpen())

	state = o.Open(testParams{ID: "L001"})
	req.Empty(state.Draft)
	req.Equal(2, calls)
}

func TestOverlay_ReopenWhileOpenResets(t *testing.T) {
	req := require.New(t)
	calls := 0
	o := newTestOverlay(&calls)
	o.Open(testParams{ID: "a"})
	_, _ = o.Update(func(_ testParams, s *testState) error {
		s.Draft = "x"
		return nil
	})

	o.Open(testParams{ID: "b"})
	state, open := o.State()
	req.True(open)
	req.Equal(testState{ID: "b"}, state)
	params, _ := o.Params()
	req.Equal("b", params.ID)
}

func TestOverlay_FailedUpdateLeavesStateUntouched(t *testing.T) {
	req := require.New(t)
	calls := 0
	o := newTestOverlay(&calls)
	o.Open(testParams{ID: "a"})

	boom := errors.New("boom")
	_, err := o.Update(func(_ testParams, s *testState) error {
		s.Draft = "partial"
		return boom
	})
	req.ErrorIs(err, boom)
	state, _ := o.State()
	req.Empty(state.Draft)
}

func TestOverlay_CompleteClosesOnlyOnSuccess(t *testing.T) {
	req := require.New(t)
	calls := 0
	o := newTestOverlay(&calls)
	o.Open(testParams{ID: "T1"})

	boom := errors.New("boom")
	req.ErrorIs(o.Complete(func(testParams, testState) error { return boom }), boom)
	req.True(o.IsOpen())

	var seen testParams
	req.NoError(o.Complete(func(p testParams, _ testState) error {
		seen = p
		return nil
	}))
	req.Equal("T1", seen.ID)
	req.False(o.IsOpen())

	_, params := o.Params()
	req.False(params)
}

func TestParseKind(t *testing.T) {
	req := require.New(t)
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		req.NoError(err)
		req.Equal(k, got)
	}
	_, err := ParseKind("wizard")
	req.ErrorIs(err, ErrUnknownKind)
}
