package cache

import "errors"

var (
	// ErrMiss is returned by Store.Get when the key is absent or expired.
	ErrMiss = errors.New("cache miss")

	ErrEmptyKey = errors.New("empty cache key")
	ErrNilStore = errors.New("nil cache store")
)
