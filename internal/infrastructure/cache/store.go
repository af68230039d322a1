package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with expiration. Implementations are best
// effort: a miss or a failed write must never break the request path.
type Store interface {
	// Get retrieves a value by key, reporting whether it was present
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key string, value string, expiration time.Duration)

	// Delete removes a key
	Delete(ctx context.Context, key string)
}
