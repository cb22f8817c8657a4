package avito

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "avito:self"

// RedisCache is a SelfInfoCache backed by Redis, so clients in different
// processes that use the same client id share self info. Values are stored
// as JSON.
type RedisCache struct {
	rdb       goredis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithKeyPrefix overrides the default key prefix.
func WithKeyPrefix(prefix string) RedisCacheOption {
	return func(r *RedisCache) {
		r.keyPrefix = prefix
	}
}

// WithTTL expires cached entries after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) RedisCacheOption {
	return func(r *RedisCache) {
		r.ttl = ttl
	}
}

// NewRedisCache creates a RedisCache using rdb.
func NewRedisCache(rdb goredis.UniversalClient, opts ...RedisCacheOption) *RedisCache {
	r := &RedisCache{rdb: rdb, keyPrefix: defaultRedisKeyPrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisCache) key(clientID string) string {
	return r.keyPrefix + ":" + clientID
}

// Get implements SelfInfoCache.
func (r *RedisCache) Get(ctx context.Context, clientID string) (*UserInfoSelf, bool, error) {
	raw, err := r.rdb.Get(ctx, r.key(clientID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", clientID, err)
	}

	var info UserInfoSelf
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, false, fmt.Errorf("decoding cached self info %q: %w", clientID, err)
	}
	return &info, true, nil
}

// Set implements SelfInfoCache.
func (r *RedisCache) Set(ctx context.Context, clientID string, info *UserInfoSelf) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding self info %q: %w", clientID, err)
	}
	if err := r.rdb.Set(ctx, r.key(clientID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", clientID, err)
	}
	return nil
}
