package cache

import (
	"context"
	"time"

	"github.com/bornholm/civicadmin/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

// Cache is an expirable LRU counting its hits and misses under its name.
// It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	name string
	lru  *expirable.LRU[K, V]
}

func New[K comparable, V any](name string, size int, ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		name: name,
		lru:  expirable.NewLRU[K, V](size, nil, ttl),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	value, exists := c.lru.Get(key)

	result := metrics.CacheResultMiss
	if exists {
		result = metrics.CacheResultHit
	}

	metrics.CacheLookupsTotal.WithLabelValues(c.name, result).Inc()

	return value, exists
}

// GetOrLoad returns the cached value of key, calling load and caching its
// result on a miss. Load errors are not cached.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, key K, load func(ctx context.Context) (V, error)) (V, error) {
	if value, exists := c.Get(key); exists {
		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero V
		return zero, errors.WithStack(err)
	}

	c.lru.Add(key, value)

	return value, nil
}

func (c *Cache[K, V]) Add(key K, value V) {
	c.lru.Add(key, value)
}

func (c *Cache[K, V]) Remove(key K) {
	c.lru.Remove(key)
}

func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}

func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}
