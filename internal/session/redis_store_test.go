package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/bank-crm/internal/domain"
)

// memRedis answers the handful of commands RedisStore issues without a server.
type memRedis struct {
	mu         sync.Mutex
	data       map[string]string
	expireErr  error
	expireKeys []string
}

func (m *memRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (m *memRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (m *memRedis) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		args := cmd.Args()
		key := fmt.Sprint(args[1])
		switch c := cmd.(type) {
		case *redis.StringCmd:
			v, ok := m.data[key]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			c.SetVal(v)
		case *redis.StatusCmd:
			switch v := args[2].(type) {
			case []byte:
				m.data[key] = string(v)
			default:
				m.data[key] = fmt.Sprint(v)
			}
			c.SetVal("OK")
		case *redis.BoolCmd:
			m.expireKeys = append(m.expireKeys, key)
			if m.expireErr != nil {
				c.SetErr(m.expireErr)
				return m.expireErr
			}
			_, ok := m.data[key]
			c.SetVal(ok)
		case *redis.IntCmd:
			_, ok := m.data[key]
			if cmd.Name() == "del" {
				delete(m.data, key)
			}
			if ok {
				c.SetVal(1)
			} else {
				c.SetVal(0)
			}
		}
		return nil
	}
}

func newRedisTestStore(t *testing.T) (*RedisStore, *memRedis, *observer.ObservedLogs) {
	t.Helper()
	fake := &memRedis{data: make(map[string]string)}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(fake)
	t.Cleanup(func() { _ = client.Close() })

	core, logs := observer.New(zapcore.WarnLevel)
	return NewRedisStore(client, time.Hour, zap.New(core)), fake, logs
}

func TestRedisStore_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store, fake, logs := newRedisTestStore(t)

	identity, err := store.Load(ctx, "s1")
	req.NoError(err)
	req.Nil(identity)

	ok, err := store.Exists(ctx, "s1")
	req.NoError(err)
	req.False(ok)

	req.NoError(store.Save(ctx, "s1", domain.Identity{ID: "4", Name: "Mike Support", Role: domain.RoleSupportAgent}))
	req.Contains(fake.data, sessionKeyPrefix+"s1")

	identity, err = store.Load(ctx, "s1")
	req.NoError(err)
	req.Equal("Mike Support", identity.Name)
	req.Equal([]string{sessionKeyPrefix + "s1"}, fake.expireKeys, "load refreshes the ttl")

	ok, err = store.Exists(ctx, "s1")
	req.NoError(err)
	req.True(ok)
	req.Len(fake.expireKeys, 1, "exists leaves the ttl alone")

	req.NoError(store.Delete(ctx, "s1"))
	identity, err = store.Load(ctx, "s1")
	req.NoError(err)
	req.Nil(identity)
	req.Zero(logs.Len())
	req.NoError(store.Close())
}

func TestRedisStore_RefreshFailureIsLogged(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store, fake, logs := newRedisTestStore(t)

	req.NoError(store.Save(ctx, "s1", domain.Identity{ID: "1", Role: domain.RoleAdmin}))
	fake.expireErr = errors.New("READONLY You can't write against a read only replica")

	identity, err := store.Load(ctx, "s1")
	req.NoError(err)
	req.Equal("1", identity.ID)

	entries := logs.FilterMessage("refresh session ttl").All()
	req.Len(entries, 1)
	req.Equal("s1", entries[0].ContextMap()["session_id"])
	req.Contains(entries[0].ContextMap()["error"], "READONLY")
}
