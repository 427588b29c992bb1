// Package cache provides the result cache used by the User-Agent detector.
//
// Store is the narrow byte-oriented contract the detector consumes:
//
//	type Store interface {
//		Get(ctx context.Context, key string) ([]byte, error)
//		Set(ctx context.Context, key string, value []byte) error
//	}
//
// Get returns ErrMiss when nothing is stored under the key. Implementations
// must be safe for concurrent use.
//
// Three stores ship with the package:
//
//   - Memory keeps entries in a generic, thread-safe LRUCache with an
//     optional per-entry lifetime.
//   - Redis keeps entries on a shared server through go-redis, so every
//     replica of a service benefits from the same warm cache.
//   - Nop never stores anything and stands in when caching is disabled.
//
// # Usage
//
//	store := cache.NewMemory(10_000, time.Hour)
//	if err := store.Set(ctx, "k", []byte("v")); err != nil {
//		// handle error
//	}
//	v, err := store.Get(ctx, "k")
//	if errors.Is(err, cache.ErrMiss) {
//		// compute and store
//	}
//
// LRUCache is also usable on its own for any comparable key and value type:
//
//	lru := cache.NewLRUCache[string, int](100, 0)
//	lru.Put("a", 1)
//	v, ok := lru.Get("a")
package cache
