package cache

import (
	"time"

	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

// CacheEntry represents a cached range.
type CacheEntry struct {
	// Range is the computed display range
	Range []pagination.Entry `json:"range"`

	// Expires is when the cache entry becomes stale
	Expires time.Time `json:"expires"`

	// CachedAt is when the range was stored
	CachedAt time.Time `json:"cached_at"`
}

// NewEntry wraps rng with an expiry ttl from now.
func NewEntry(rng []pagination.Entry, ttl time.Duration) *CacheEntry {
	now := time.Now()
	return &CacheEntry{
		Range:    rng,
		Expires:  now.Add(ttl),
		CachedAt: now,
	}
}

// IsExpired returns true if the cache entry has expired.
func (e *CacheEntry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *CacheEntry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}
