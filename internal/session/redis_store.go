package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowbook/admin-console/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session fields in Redis under a per-namespace prefix.
type RedisStore struct {
	rdb       redis.Cmdable
	namespace string
	ttl       time.Duration
}

// NewRedisStore creates a new RedisStore. A zero ttl keeps keys forever.
func NewRedisStore(rdb redis.Cmdable, namespace string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, namespace: namespace, ttl: ttl}
}

func (s *RedisStore) key(k string) string {
	return config.StorageKey.RedisKey(s.namespace, k)
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
