// Package redis connects to the Redis server that backs the shared detection
// result cache (see cache.Redis).
//
// Config is populated from the environment with github.com/caarlos0/env:
//
//	REDIS_URL              redis://:password@localhost:6379/0
//	REDIS_RETRY_ATTEMPTS   3
//	REDIS_RETRY_INTERVAL   2s
//	REDIS_CONNECT_TIMEOUT  10s
//
// Connect retries the initial ping so that a service starting next to its
// Redis container does not fail on the first attempt:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := cache.NewRedis(client, time.Hour)
//
// Healthcheck wraps a ping into a func(context.Context) error probe.
//
// Errors are sentinel values joined with the underlying go-redis error via
// errors.Join, so errors.Is works for both.
package redis
