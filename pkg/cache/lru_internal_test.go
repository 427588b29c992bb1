package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLRUCache_TTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewLRUCache[string, int](4, time.Minute)
	c.now = func() time.Time { return now }

	c.Put("a", 1)

	now = now.Add(59 * time.Second)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry expires once its lifetime elapsed")
	assert.Equal(t, 0, c.Len())

	c.Put("b", 2)
	now = now.Add(50 * time.Second)
	c.Put("b", 3) // refresh restarts the lifetime
	now = now.Add(50 * time.Second)
	v, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}
