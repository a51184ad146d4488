package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("key not found")

// Cache is the key/value port backing console state that outlives a request,
// such as the order service credential. Implemented by RedisAdapter and MemoryAdapter.
type Cache interface {
	// Get returns the value stored under key, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks if the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the backing store.
	Close() error
}

// New returns a RedisAdapter when redisURL is set and a MemoryAdapter otherwise.
func New(redisURL string) (Cache, error) {
	if redisURL == "" {
		return NewMemoryAdapter(), nil
	}
	return NewRedisAdapter(redisURL)
}
