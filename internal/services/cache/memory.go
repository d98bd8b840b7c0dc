package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryCache is a size-bounded in-process cache
type MemoryCache struct {
	mu      sync.RWMutex
	items   map[string]*entry
	size    int64
	maxSize int64

	hits, misses, sets, deletes, evictions atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type entry struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a cache holding at most maxSizeMB megabytes.
// A non-positive size disables the bound.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := &MemoryCache{
		items:   make(map[string]*entry),
		maxSize: maxSizeMB * 1024 * 1024,
		stopCh:  make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweep(time.Minute)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	mc.mu.RLock()
	e, ok := mc.items[key]
	mc.mu.RUnlock()

	if !ok || time.Now().After(e.expiry) {
		mc.misses.Add(1)
		return nil, false, nil
	}

	mc.hits.Add(1)
	return e.value, true, nil
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	e := &entry{value: value, expiry: time.Now().Add(ttl), size: int64(len(key) + len(value))}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if old, ok := mc.items[key]; ok {
		mc.size -= old.size
		delete(mc.items, key)
	}
	mc.evictFor(e.size)
	mc.items[key] = e
	mc.size += e.size
	mc.sets.Add(1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if e, ok := mc.items[key]; ok {
		delete(mc.items, key)
		mc.size -= e.size
		mc.deletes.Add(1)
	}
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() Stats {
	mc.mu.RLock()
	size := mc.size
	mc.mu.RUnlock()

	return Stats{
		Hits:      mc.hits.Load(),
		Misses:    mc.misses.Load(),
		Sets:      mc.sets.Load(),
		Deletes:   mc.deletes.Load(),
		Evictions: mc.evictions.Load(),
		Size:      size,
		MaxSize:   mc.maxSize,
	}
}

// Close stops the background sweeper
func (mc *MemoryCache) Close() error {
	mc.stopOnce.Do(func() { close(mc.stopCh) })
	mc.wg.Wait()
	return nil
}

func (mc *MemoryCache) sweep(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpired(time.Now())
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

// removeExpired must be called with mu held
func (mc *MemoryCache) removeExpired(now time.Time) {
	for key, e := range mc.items {
		if now.After(e.expiry) {
			delete(mc.items, key)
			mc.size -= e.size
			mc.evictions.Add(1)
		}
	}
}

// evictFor frees room for an entry of the given size, expired entries first
// and then the entries closest to expiry. Must be called with mu held.
func (mc *MemoryCache) evictFor(size int64) {
	if mc.maxSize <= 0 || mc.size+size <= mc.maxSize {
		return
	}

	mc.removeExpired(time.Now())

	for mc.size+size > mc.maxSize && len(mc.items) > 0 {
		var victim string
		var soonest time.Time
		for key, e := range mc.items {
			if victim == "" || e.expiry.Before(soonest) {
				victim, soonest = key, e.expiry
			}
		}
		mc.size -= mc.items[victim].size
		delete(mc.items, victim)
		mc.evictions.Add(1)
	}
}
