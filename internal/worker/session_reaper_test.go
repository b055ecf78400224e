package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingReaper struct {
	calls atomic.Int32
	err   error
}

func (r *countingReaper) ReapExpired(context.Context) (int, error) {
	r.calls.Add(1)
	return 0, r.err
}

func TestStartSessionReaper_RunsUntilCancelled(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	reaper := &countingReaper{err: errors.New("store down")}

	done := StartSessionReaper(ctx, reaper, time.Millisecond, zap.NewNop())
	req.Eventually(func() bool { return reaper.calls.Load() >= 2 }, time.Second, time.Millisecond)

	cancel()
	req.Eventually(func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}

func TestStartSessionReaper_NilReaper(t *testing.T) {
	done := StartSessionReaper(context.Background(), nil, time.Millisecond, zap.NewNop())
	_, open := <-done
	require.False(t, open)
}
