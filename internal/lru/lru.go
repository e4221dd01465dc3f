// Package lru provides a bounded, mutex guarded least recently used cache.
package lru

import (
	"container/list"
	"sync"
)

// DefaultCapacity is used when a non positive capacity is requested
const DefaultCapacity = 512

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache keeps at most capacity entries, evicting the least recently used one
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
}

// New creates a cache
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    map[K]*list.Element{},
		order:    list.New(),
	}
}

// Get returns cached value and marks it recently used
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value, evicting the oldest entry over capacity
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		elem.Value = entry[K, V]{key: key, value: value}
		c.order.MoveToFront(elem)
		return
	}
	c.items[key] = c.order.PushFront(entry[K, V]{key: key, value: value})
	if c.order.Len() <= c.capacity {
		return
	}
	if last := c.order.Back(); last != nil {
		c.order.Remove(last)
		delete(c.items, last.Value.(entry[K, V]).key)
	}
}

// Len returns number of cached entries
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
