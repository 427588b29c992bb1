package cache

import "context"

// Store is a byte-oriented key/value cache safe for concurrent use.
// Get returns ErrMiss when nothing is stored under key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Nop is a Store that never holds anything. It stands in when caching is disabled.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (Nop) Set(context.Context, string, []byte) error { return nil }
