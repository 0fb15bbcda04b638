package cache

import "sync"

// Cache memoizes values by key. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	data sync.Map
}

func New[K comparable, V any]() *Cache[K, V] {
	var c Cache[K, V]
	return &c
}

// Get returns the value stored for key, computing and storing it with build
// on a miss. When two callers race on the same key, both receive the value
// that was stored first. A build error is returned as-is and nothing is stored.
func (c *Cache[K, V]) Get(key K, build func() (V, error)) (V, error) {
	if v, ok := c.data.Load(key); ok {
		return v.(V), nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	actual, loaded := c.data.LoadOrStore(key, v)
	if loaded {
		return actual.(V), nil
	}
	return v, nil
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	n := 0
	c.data.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
