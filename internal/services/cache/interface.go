package cache

import (
	"context"
	"time"
)

// Cache stores serialized records by key with a time to live.
// A miss is reported as (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Stats provides statistics about cache usage
type Stats struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Deletes   int64
	Evictions int64
	Size      int64
	MaxSize   int64
}

// StatsProvider interface for caches that provide statistics
type StatsProvider interface {
	Stats() Stats
}

// DefaultTTL applies when Set is called with a non-positive ttl
const DefaultTTL = 5 * time.Minute
