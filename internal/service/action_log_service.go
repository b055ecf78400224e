package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/bank-crm/internal/events"
)

const defaultActionLogCapacity = 200

// ActionLogService records what users did through overlays and sessions.
// Entries are logged and kept in a bounded in-memory ring; nothing is
// persisted.
type ActionLogService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	capacity   int

	mu      sync.Mutex
	entries []events.Event
}

// NewActionLogService creates the service.
func NewActionLogService(dispatcher events.Dispatcher, logger *zap.Logger, capacity int) *ActionLogService {
	if capacity <= 0 {
		capacity = defaultActionLogCapacity
	}
	return &ActionLogService{
		dispatcher: dispatcher,
		logger:     logger,
		capacity:   capacity,
	}
}

// RegisterHandlers subscribes to every known event type.
func (s *ActionLogService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	for _, eventType := range events.EventTypes {
		s.dispatcher.Subscribe(eventType, s.handle)
	}
}

func (s *ActionLogService) handle(_ context.Context, event events.Event) error {
	s.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("subject", event.Subject),
		zap.String("session_id", event.Actor.SessionID),
		zap.String("role", event.Actor.Role),
		zap.Any("payload", event.Payload))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, event)
	if over := len(s.entries) - s.capacity; over > 0 {
		s.entries = append([]events.Event(nil), s.entries[over:]...)
	}
	return nil
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (s *ActionLogService) Recent(limit int) []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]events.Event, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out
}
