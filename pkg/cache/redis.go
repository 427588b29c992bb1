package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared Redis server, so every replica of a
// service reuses the same results.
type Redis struct {
	db  redis.UniversalClient
	ttl time.Duration
}

// NewRedis wraps a connected client. Zero ttl means no expiration.
func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{db: client, ttl: ttl}
}

// Get maps redis.Nil to ErrMiss.
func (s *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	val, err := s.db.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores value for the configured ttl.
func (s *Redis) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Set(ctx, key, value, s.ttl).Err()
}
