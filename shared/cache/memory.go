package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
	"tzconv/infras/otel"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	otel    otel.Otel
	now     func() time.Time
}

// NewMemoryCache returns a Cache held in process memory. Expired entries are
// dropped lazily on access.
func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		otel:    ot,
		now:     time.Now,
	}
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.mu.Lock()
	entry, ok := cache.entries[key]
	if ok && !cache.now().Before(entry.expires) {
		delete(cache.entries, key)
		ok = false
	}
	cache.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(string(entry.value), value)
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelCacheKeyAttribute, key)

	strValue, err := encode(value)
	if err != nil {
		return err
	}

	cache.mu.Lock()
	cache.entries[key] = memoryEntry{
		value:   strValue,
		expires: cache.now().Add(time.Second * time.Duration(duration)),
	}
	cache.mu.Unlock()

	return nil
}
