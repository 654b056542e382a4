// Package cache defines the cache interface and its Redis implementation.
// Cached values are disposable derived state, never the source of truth.
package cache

import (
	"context"
	"time"
)

// Cache stores small string values under namespaced keys with per-key expiry.
// Last writer wins; no durability across restarts is assumed.
type Cache interface {
	// Get returns the value for key. A miss is (_, false, nil); errors are
	// reserved for transport failures.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Ping probes the backend for health reporting.
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}
