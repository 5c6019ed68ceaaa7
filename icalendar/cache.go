package icalendar

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"
	"time"
)

type cacheEntry struct {
	occurrences []Occurrence
	expiresAt   time.Time
	accessedAt  time.Time
}

// Cache memoizes expansion results keyed by a component's timing and
// recurrence properties, so re-rendering the same range skips rrule work.
type Cache struct {
	mu          sync.RWMutex
	entries     map[string]*cacheEntry
	ttl         time.Duration
	maxEntries  int
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// CacheConfig holds configuration for the occurrence cache
type CacheConfig struct {
	TTL             time.Duration // how long entries stay valid
	MaxEntries      int           // least recently used entries are evicted beyond this
	CleanupInterval time.Duration // 0 disables the background sweep
}

// DefaultCacheConfig suits a long-running process rendering a handful of calendars
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

// NewCache creates a cache. Call Close to stop its cleanup goroutine.
func NewCache(config CacheConfig) *Cache {
	c := &Cache{
		entries:     make(map[string]*cacheEntry),
		ttl:         config.TTL,
		maxEntries:  config.MaxEntries,
		stopCleanup: make(chan struct{}),
	}
	if config.CleanupInterval > 0 {
		go c.cleanupLoop(config.CleanupInterval)
	}
	return c
}

// cacheKey hashes everything Occurrences depends on.
func cacheKey(start time.Time, duration time.Duration, info RecurrenceInfo, from, to time.Time, opts ExpandOptions) string {
	h := sha256.New()
	writeTime := func(t time.Time) {
		h.Write([]byte(t.Format(time.RFC3339Nano)))
		h.Write([]byte{0})
	}

	writeTime(start)
	writeTime(from)
	writeTime(to)
	_ = binary.Write(h, binary.BigEndian, int64(duration))
	_ = binary.Write(h, binary.BigEndian, int64(opts.MaxOccurrences))
	h.Write([]byte(info.RRULE))
	h.Write([]byte{0})
	for _, t := range info.RDATE {
		writeTime(t)
	}
	h.Write([]byte("EXDATE"))
	for _, t := range info.EXDATE {
		writeTime(t)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (c *Cache) get(key string) ([]Occurrence, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	now := time.Now()
	if now.After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	entry.accessedAt = now
	return append([]Occurrence(nil), entry.occurrences...), true
}

func (c *Cache) set(key string, occs []Occurrence) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		occurrences: append([]Occurrence(nil), occs...),
		expiresAt:   now.Add(c.ttl),
		accessedAt:  now,
	}
	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.cleanup(now)
	}
}

// cleanup drops expired entries, then the least recently used ones until
// the cache is back under its limit. Callers hold c.mu.
func (c *Cache) cleanup(now time.Time) {
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	if c.maxEntries <= 0 || len(c.entries) <= c.maxEntries {
		return
	}

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return c.entries[keys[i]].accessedAt.Before(c.entries[keys[j]].accessedAt)
	})
	for _, key := range keys[:len(keys)-c.maxEntries] {
		delete(c.entries, key)
	}
}

func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			c.mu.Lock()
			c.cleanup(now)
			c.mu.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and empties the cache.
func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.stopCleanup) })
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// CacheStats reports cache occupancy
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}

// Stats returns cache statistics
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	expired := 0
	for _, entry := range c.entries {
		if now.After(entry.expiresAt) {
			expired++
		}
	}
	return CacheStats{
		TotalEntries:   len(c.entries),
		ExpiredEntries: expired,
		ActiveEntries:  len(c.entries) - expired,
	}
}
