package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when a key is absent or expired.
var ErrKeyNotFound = errors.New("key not found")

// Store is a TTL key-value store holding ephemeral session tokens.
// Implementations must remain stateless and opaque.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
