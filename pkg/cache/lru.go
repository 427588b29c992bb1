package cache

import (
	"container/list"
	"sync"
	"time"
)

type lruEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// LRUCache is a thread-safe LRU cache with an optional per-entry lifetime.
// When the cache reaches its capacity, the least recently used item is evicted.
type LRUCache[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time
}

// NewLRUCache creates a new LRU cache with the specified capacity.
// A zero ttl keeps entries until they are evicted. The capacity must be
// positive, otherwise it panics.
func NewLRUCache[K comparable, V any](capacity int, ttl time.Duration) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("LRU cache capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
}

// Get retrieves a value from the cache and marks it as recently used.
// Expired entries are dropped and reported as missing.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}

	entry := elem.Value.(*lruEntry[K, V])
	if c.expired(entry) {
		c.removeElement(elem)
		return zero, false
	}

	c.eviction.MoveToFront(elem)
	return entry.value, true
}

// Put adds or updates a value in the cache and restarts its lifetime.
// Returns the previous value if it existed.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		oldValue := entry.value
		entry.value = value
		entry.expiresAt = c.deadline()
		return oldValue, true
	}

	entry := &lruEntry[K, V]{key: key, value: value, expiresAt: c.deadline()}
	c.items[key] = c.eviction.PushFront(entry)

	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}

	var zero V
	return zero, false
}

// Len counts entries including expired ones not yet collected.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

func (c *LRUCache[K, V]) deadline() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(c.ttl)
}

func (c *LRUCache[K, V]) expired(e *lruEntry[K, V]) bool {
	return !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt)
}

// Must be called with lock held.
func (c *LRUCache[K, V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// Must be called with lock held.
func (c *LRUCache[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)
}
