package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uadetect/pkg/cache"
)

func TestLRUCache_Basic(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3, 0)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		val, ok = c.Get("c")
		assert.True(t, ok)
		assert.Equal(t, 3, val)

		assert.Equal(t, 3, c.Len())
	})

	t.Run("get non-existent", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3, 0)

		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("update existing", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3, 0)

		c.Put("a", 1)
		oldVal, existed := c.Put("a", 2)

		assert.True(t, existed)
		assert.Equal(t, 1, oldVal)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("zero capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRUCache[string, int](0, 0) })
	})
}

func TestLRUCache_Eviction(t *testing.T) {
	c := cache.NewLRUCache[string, int](2, 0)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // b is now the least recently used
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}
