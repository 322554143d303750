package cachemanager

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/zjrosen/vimtutor/internal/log"
)

// ReadThroughCache fills misses by calling load and keeps the result for ttl.
// With refresh set, every hit pushes the entry's expiry back by ttl so text
// that is on screen never expires.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache   CacheManager[K, V]
	load    func(ctx context.Context, input I) (V, error)
	ttl     time.Duration
	refresh bool

	hits   atomic.Int64
	misses atomic.Int64
}

func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	load func(ctx context.Context, input I) (V, error),
	ttl time.Duration,
	refresh bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:   cache,
		load:    load,
		ttl:     ttl,
		refresh: refresh,
	}
}

// Get returns the value cached under key, computing it from input on a miss.
// Load errors are returned and nothing is cached.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I) (V, error) {
	var (
		value V
		ok    bool
	)
	if r.refresh {
		value, ok = r.cache.GetWithRefresh(ctx, key, r.ttl)
	} else {
		value, ok = r.cache.Get(ctx, key)
	}
	if ok {
		r.hits.Add(1)
		return value, nil
	}

	r.misses.Add(1)
	value, err := r.load(ctx, input)
	if err != nil {
		return value, err
	}
	r.cache.Set(ctx, key, value, r.ttl)
	return value, nil
}

// Stats reports hits and misses since the last Invalidate.
func (r *ReadThroughCache[K, V, I]) Stats() (hits, misses int64) {
	return r.hits.Load(), r.misses.Load()
}

// Invalidate drops every cached value, e.g. after lessons are reloaded.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context) error {
	hits, misses := r.hits.Swap(0), r.misses.Swap(0)
	log.Debug(log.CatCache, "Invalidating read-through cache", "hits", hits, "misses", misses)
	return r.cache.Flush(ctx)
}
