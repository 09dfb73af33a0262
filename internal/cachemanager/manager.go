// Package cachemanager provides a generic cache interface with an
// in-memory implementation and a read-through wrapper. The pipeline
// uses it to memoize (kit, code) resolutions and to front the external
// oracle verdict store.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
