package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	cache := New[string, int](2)
	cache.Set("a", 1)
	cache.Set("b", 2)
	value, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	cache.Set("c", 3)
	_, ok = cache.Get("b")
	assert.False(t, ok, "least recently used entry evicted")
	assert.Equal(t, 2, cache.Len())

	cache.Set("a", 10)
	value, _ = cache.Get("a")
	assert.Equal(t, 10, value)

	assert.Equal(t, DefaultCapacity, New[int, int](0).capacity)
}
