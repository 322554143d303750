// Package cachemanager caches derived values such as rendered lesson text.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value cache with per-entry TTLs. A zero ttl
// means the implementation's default expiration.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	// GetWithRefresh is Get, but a hit also restarts the entry's ttl.
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	// Flush drops every entry.
	Flush(ctx context.Context) error
}
