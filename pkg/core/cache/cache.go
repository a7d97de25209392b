// Package cache keeps recent results keyed by content, bounded in size and age.
package cache

import (
	"sync"
	"time"
)

// Defaults used when Config leaves a field at zero
const (
	DefaultMaxItems        = 256
	DefaultTTL             = 5 * time.Minute
	DefaultCleanupInterval = time.Minute
)

// Config bounds a cache
type Config struct {
	MaxItems        int
	TTL             time.Duration
	CleanupInterval time.Duration
}

// Stats describes cache usage
type Stats struct {
	Size    int     `json:"size"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

type entry struct {
	value   interface{}
	stored  time.Time
	expires time.Time
}

// Cache is safe for concurrent use. Entries expire TTL after they were
// stored; when full, storing a new key drops the entry stored first.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	maxItems int
	ttl      time.Duration
	hits     int64
	misses   int64

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache and starts its cleanup goroutine; Close stops it
func New(cfg Config) *Cache {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}

	c := &Cache{
		entries:  make(map[string]entry),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		stop:     make(chan struct{}),
	}
	go c.cleanupLoop(cfg.CleanupInterval)
	return c
}

// Get returns the live value stored under key
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if ok && time.Now().After(e.expires) {
		delete(c.entries, key)
		ok = false
	}
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return e.value, true
}

// Set stores value under key
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxItems {
		c.dropOldest()
	}
	now := time.Now()
	c.entries[key] = entry{value: value, stored: now, expires: now.Add(c.ttl)}
}

// GetOrSet returns the value under key, computing and storing it on a miss.
// Failed computations are not stored.
func (c *Cache) GetOrSet(key string, compute func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	c.Set(key, v)
	return v, nil
}

// Size returns the number of stored entries, expired ones included until cleanup
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the size and the hit rate in percent
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Size: len(c.entries), Hits: c.hits, Misses: c.misses}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total) * 100
	}
	return s
}

// Close stops the cleanup goroutine. The cache stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// dropOldest must be called with mu held
func (c *Cache) dropOldest() {
	var oldest string
	var at time.Time
	for key, e := range c.entries {
		if oldest == "" || e.stored.Before(at) {
			oldest, at = key, e.stored
		}
	}
	delete(c.entries, oldest)
}

func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, e := range c.entries {
				if now.After(e.expires) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
