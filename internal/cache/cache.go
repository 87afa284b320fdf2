package cache

import (
	"sync"
	"time"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
)

// TourCache is an in-memory store for computed search results, keyed by the
// filter fingerprint. Entries expire after a fixed TTL; expired entries are
// treated as absent on read and removed by a background sweep. Writers to
// the same key are not serialized; last write wins, which is fine since
// staleness up to the TTL is already tolerated.
type TourCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	done    chan struct{}
}

type cacheEntry struct {
	tours     []models.Tour
	expiresAt time.Time
}

// New creates a TourCache with the given TTL and starts the sweep
// goroutine. Call Close to stop it.
func New(ttl time.Duration) *TourCache {
	c := &TourCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the cached result for key. An entry past its TTL is a miss
// and is dropped on the spot.
func (c *TourCache) Get(key string) ([]models.Tour, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a fresh Set may have landed.
		if cur, ok := c.entries[key]; ok && time.Now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.tours, true
}

// Set stores tours under key with the cache's TTL applied at write time.
func (c *TourCache) Set(key string, tours []models.Tour) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		tours:     tours,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Len returns the number of live (unexpired) entries.
func (c *TourCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	now := time.Now()
	n := 0
	for _, entry := range c.entries {
		if now.Before(entry.expiresAt) {
			n++
		}
	}
	return n
}

// Close stops the background sweep goroutine.
func (c *TourCache) Close() {
	close(c.done)
}

// sweep periodically drops expired entries. The interval is twice the TTL,
// matching the stdTTL/checkperiod ratio the service has always run with.
func (c *TourCache) sweep() {
	ticker := time.NewTicker(2 * c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}
