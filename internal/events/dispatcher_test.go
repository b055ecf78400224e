package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher_PublishReachesSubscribers(t *testing.T) {
	req := require.New(t)
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventLeadAssigned, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.Subject)
		return nil
	})
	d.Subscribe(EventLeadAssigned, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.Subject)
		return nil
	})
	d.Subscribe(EventTicketClosed, func(context.Context, Event) error {
		got = append(got, "closed")
		return nil
	})

	req.NoError(d.Publish(context.Background(), Event{Type: EventLeadAssigned, Subject: "L001"}))
	req.Equal([]string{"first:L001", "second:L001"}, got)
}

func TestInMemoryDispatcher_HandlerErrorsJoined(t *testing.T) {
	req := require.New(t)
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	calls := 0
	d.Subscribe(EventUserAdded, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventUserAdded, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserAdded})
	req.ErrorIs(err, boom)
	req.Equal(2, calls)
}

func TestInMemoryDispatcher_NoSubscribers(t *testing.T) {
	require.NoError(t, NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventTicketReplied}))
}

func TestActorContext(t *testing.T) {
	req := require.New(t)
	_, ok := ActorFromContext(context.Background())
	req.False(ok)

	ctx := WithActor(context.Background(), Actor{SessionID: "s1", Role: "admin"})
	actor, ok := ActorFromContext(ctx)
	req.True(ok)
	req.Equal("s1", actor.SessionID)
}
