package cache

import (
	"context"
	"time"
)

// Memory is an in-process Store backed by LRUCache.
type Memory struct {
	lru *LRUCache[string, []byte]
}

// NewMemory creates a Memory store holding at most size entries, each for at
// most ttl (zero means until evicted).
func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: NewLRUCache[string, []byte](size, ttl)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

// Set stores a copy of value so callers may reuse their buffer.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.lru.Put(key, append([]byte(nil), value...))
	return nil
}

// Len reports the number of stored entries.
func (m *Memory) Len() int { return m.lru.Len() }
