// Package cache provides the key/value stores backing the record store
// and the insight cache: a Redis implementation for shared deployments
// and an in-process fallback with a background expiry sweep.
package cache

import (
	"context"
	"time"
)

// Store is a key/value cache with per-entry expiry.
type Store interface {
	// Get returns the cached value and whether the key was present and
	// unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes a value with the given TTL. A zero TTL means the entry
	// never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Key conventions. These must stay stable across process restarts since
// the store may be external and shared.

// MatchKey is the record-store key for a raw match record.
func MatchKey(matchID string) string {
	return "match:" + matchID
}

// InsightKey is the insight-cache key for a computed scene payload
// fingerprint.
func InsightKey(fingerprint string) string {
	return "insight:" + fingerprint
}
