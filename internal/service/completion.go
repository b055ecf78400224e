package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/bank-crm/internal/events"
	"github.com/spec-kit/bank-crm/internal/overlay"
)

// NewOverlayCompletion turns overlay results into published events. The
// actor is taken from ctx when present.
func NewOverlayCompletion(dispatcher events.Dispatcher, logger *zap.Logger) overlay.Completion {
	return func(ctx context.Context, result overlay.Result) {
		actor, ok := events.ActorFromContext(ctx)
		if !ok {
			actor = events.Actor{SessionID: result.SessionID}
		}
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      result.Event,
			Subject:   result.Subject,
			Actor:     actor,
			Timestamp: time.Now().UTC(),
			Payload:   result.Payload,
		}
		if err := dispatcher.Publish(ctx, event); err != nil {
			logger.Warn("publish overlay completion",
				zap.String("kind", string(result.Kind)),
				zap.String("action", result.Action),
				zap.Error(err))
		}
	}
}
