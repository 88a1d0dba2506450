package rutgen_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/redis"
	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/rutgen"
)

func redisClient(t *testing.T) *goredis.Client {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()

	store := rutgen.NewRedisStore(client,
		rutgen.WithKey("rut:test:"+uuid.NewString()),
		rutgen.WithTTL(time.Minute),
	)
	t.Cleanup(func() { _ = store.Reset(ctx) })

	r := rut.MustParse("17.951.585-7")

	ok, err := store.Reserve(ctx, r)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, r)
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.TTL(ctx, store.Key()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Release(ctx, r))
	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisStoreWithGenerator(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()

	store := rutgen.NewRedisStore(client, rutgen.WithKey("rut:test:"+uuid.NewString()))
	t.Cleanup(func() { _ = store.Reset(ctx) })

	gen := rutgen.New(store, rutgen.WithRange(lo, lo+4), rutgen.WithMaxAttempts(1000))
	for range 5 {
		_, err := gen.Next(ctx)
		require.NoError(t, err)
	}
	_, err := gen.Next(ctx)
	require.ErrorIs(t, err, rutgen.ErrExhausted)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestRedisStoreDefaults(t *testing.T) {
	t.Parallel()

	store := rutgen.NewRedisStore(nil, rutgen.WithKey(""))
	assert.Equal(t, rutgen.DefaultKey, store.Key())
}
