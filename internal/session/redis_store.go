package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/bank-crm/internal/domain"
)

const (
	sessionKeyPrefix = "crm:session:"
	defaultTTL       = 8 * time.Hour
)

// RedisStore keeps bindings in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore wraps an existing client. A non-positive ttl selects the default.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, id string, identity domain.Identity) error {
	val, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(id), val, s.ttl).Err()
}

// Load implements Store. Every successful read refreshes the TTL.
func (s *RedisStore) Load(ctx context.Context, id string) (*domain.Identity, error) {
	key := s.key(id)
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var identity domain.Identity
	if err := json.Unmarshal(val, &identity); err != nil {
		return nil, err
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		s.logger.Warn("refresh session ttl", zap.String("session_id", id), zap.Error(err))
	}
	return &identity, nil
}

// Exists implements Store.
func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

// Close is a no-op: the client is owned by the persistence layer.
func (s *RedisStore) Close() error {
	return nil
}

func (s *RedisStore) key(id string) string {
	return sessionKeyPrefix + id
}
