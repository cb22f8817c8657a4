//go:build integration

package avito_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/avito-client/internal/avito"
)

// setupRedis starts a Redis container and returns a connected client.
// Run with: go test -tags=integration -run Redis ./internal/avito/...
func setupRedis(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, redisContainer.Terminate(ctx))
	})

	connStr, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := goredis.ParseURL(connStr)
	require.NoError(t, err)

	rdb := goredis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())

	return rdb
}

func TestRedisCache_SharedAcrossClients(t *testing.T) {
	rdb := setupRedis(t)

	var selfCalls atomic.Int32
	srv := newServer(t, &tokenIssuer{}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/v1/accounts/self", r.URL.Path)
		selfCalls.Add(1)
		writeJSON(w, http.StatusOK, selfJSON)
	})

	// Each client gets its own RedisCache over the shared server, the way
	// two processes would.
	first := newClient(srv, avito.WithSelfInfoCache(avito.NewRedisCache(rdb)))
	second := newClient(srv, avito.WithSelfInfoCache(avito.NewRedisCache(rdb)))

	ctx := context.Background()
	a, err := first.SelfInfo(ctx)
	require.NoError(t, err)
	b, err := second.SelfInfo(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), selfCalls.Load())
	assert.Equal(t, int64(100), a.ID)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "Test Shop", b.Name)

	n, err := rdb.Exists(ctx, "avito:self:test-id").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedisCache_EntryExpires(t *testing.T) {
	rdb := setupRedis(t)
	cache := avito.NewRedisCache(rdb, avito.WithKeyPrefix("it:self"), avito.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "cid", &avito.UserInfoSelf{ID: 7, Name: "Shop"}))

	got, ok, err := cache.Get(ctx, "cid")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(7), got.ID)

	ttl, err := rdb.TTL(ctx, "it:self:cid").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	assert.Eventually(t, func() bool {
		_, ok, err := cache.Get(ctx, "cid")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, "avito:self:cid", "not json", 0).Err())

	_, ok, err := avito.NewRedisCache(rdb).Get(ctx, "cid")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "decoding cached self info")
}
