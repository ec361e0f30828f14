// pkg/memcache/store.go
package mem

import (
	"context"
	"time"
)

// Store is a string key/value store with per-key expiry. It backs the
// reference-data cache and the revoked-token denylist.
type Store interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Get returns ok=false for missing or expired keys.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	Delete(ctx context.Context, key string) error
}

const (
	RevokedTokenPrefix = "revoked:"
	ReferencePrefix    = "ref:"
)
