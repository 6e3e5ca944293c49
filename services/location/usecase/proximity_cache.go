package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/pathclear/internal/pkg/metrics"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/utils"
	"golang.org/x/sync/singleflight"
)

const (
	// MaxProximityCacheTTL bounds how stale a cached proximity answer may be
	MaxProximityCacheTTL = 15 * time.Second

	// ~5m cells; centers inside the same cell share an entry
	proximityKeyPrecision = 9

	// expired entries are swept once the cache grows past this size
	sweepThreshold = 1024
)

type cacheEntry struct {
	actors    []models.NearbyActor
	expiresAt time.Time
}

// ProximityCache is a short-lived read-through cache in front of proximity
// queries. Concurrent misses for the same key share a single store query.
type ProximityCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

// NewProximityCache creates a cache; ttl is capped at MaxProximityCacheTTL
// and a non-positive ttl disables caching. now defaults to time.Now.
func NewProximityCache(ttl time.Duration, now func() time.Time) *ProximityCache {
	if ttl > MaxProximityCacheTTL {
		ttl = MaxProximityCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ProximityCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// TTL returns the effective time to live
func (c *ProximityCache) TTL() time.Duration {
	return c.ttl
}

// ProximityKey builds the cache key of a proximity query
func ProximityKey(center models.Position, radiusMeters float64, filter models.ProximityFilter) string {
	return fmt.Sprintf("%s:%.0f:%s:%t:%s:%d",
		utils.EncodeGeohash(center, proximityKeyPrecision),
		radiusMeters,
		filter.Role,
		filter.OnlineOnly,
		filter.ExcludeID,
		filter.Limit,
	)
}

// Get returns the cached result for key or calls load. Errors are never cached.
func (c *ProximityCache) Get(ctx context.Context, key string, load func(ctx context.Context) ([]models.NearbyActor, error)) ([]models.NearbyActor, error) {
	if c.ttl <= 0 {
		return load(ctx)
	}

	if actors, ok := c.lookup(key); ok {
		metrics.CacheHits.Inc()
		return actors, nil
	}
	metrics.CacheMisses.Inc()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		actors, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, actors)
		return actors, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]models.NearbyActor)), nil
}

// Invalidate drops a single key
func (c *ProximityCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll drops every cached result
func (c *ProximityCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of entries, expired ones included
func (c *ProximityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ProximityCache) lookup(key string) ([]models.NearbyActor, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false
	}
	return clone(entry.actors), true
}

func (c *ProximityCache) store(key string, actors []models.NearbyActor) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= sweepThreshold {
		for k, e := range c.entries {
			if !now.Before(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
	c.entries[key] = cacheEntry{actors: clone(actors), expiresAt: now.Add(c.ttl)}
}

func clone(actors []models.NearbyActor) []models.NearbyActor {
	if actors == nil {
		return nil
	}
	out := make([]models.NearbyActor, len(actors))
	copy(out, actors)
	return out
}
