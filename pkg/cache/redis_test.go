package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetect/pkg/cache"
	"github.com/dmitrymomot/uadetect/pkg/redis"
)

func TestRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		RetryInterval:  time.Second,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := cache.NewRedis(client, time.Minute)
	key := "uadetect:test:" + t.Name()
	t.Cleanup(func() { _ = client.Del(ctx, key).Err() })

	_, err = store.Get(ctx, key)
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, store.Set(ctx, key, []byte("value")))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
