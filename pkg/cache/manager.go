package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Manager handles range caching with a Redis backend.
type Manager struct {
	redis  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewManager creates a new cache manager. Entries are stored for ttl.
func NewManager(redisClient *redis.Client, ttl time.Duration) *Manager {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &Manager{
		redis:  redisClient,
		ttl:    ttl,
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for cache debug events.
func (m *Manager) WithLogger(logger zerolog.Logger) *Manager {
	m.logger = logger
	return m
}

// Get retrieves a cached range by key.
// Returns ErrCacheMiss if the key doesn't exist or entry is expired.
func (m *Manager) Get(ctx context.Context, key RangeKey) (*CacheEntry, error) {
	cacheKey := key.String()

	data, err := m.redis.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			CacheMisses.Inc()
			return nil, ErrCacheMiss
		}
		CacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		CacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	if entry.IsExpired() {
		_ = m.Delete(ctx, key)
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.Inc()
	return &entry, nil
}

// Set stores a range under key with the manager's TTL.
// A non-positive TTL disables storage.
func (m *Manager) Set(ctx context.Context, key RangeKey, rng []pagination.Entry) error {
	if rng == nil {
		return fmt.Errorf("%w: range cannot be nil", ErrInvalidEntry)
	}
	if m.ttl <= 0 {
		return nil
	}

	entry := NewEntry(rng, m.ttl)
	data, err := json.Marshal(entry)
	if err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := m.redis.Set(ctx, key.String(), data, m.ttl).Err(); err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	CacheBytesWritten.Add(float64(len(data)))
	return nil
}

// Delete removes a cached range.
func (m *Manager) Delete(ctx context.Context, key RangeKey) error {
	if err := m.redis.Del(ctx, key.String()).Err(); err != nil {
		CacheErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// GetOrCompute returns the cached range for key, computing and storing it
// with pagination.Range on a miss. Cache failures are returned together with
// the computed range so callers can log and carry on.
func (m *Manager) GetOrCompute(ctx context.Context, key RangeKey) ([]pagination.Entry, error) {
	key = key.Normalize()

	entry, err := m.Get(ctx, key)
	if err == nil {
		m.logger.Debug().Str("key", key.String()).Msg("Range cache hit")
		return entry.Range, nil
	}

	rng := pagination.Range(key.Siblings, key.Boundaries, key.Total, key.Active)
	if !errors.Is(err, ErrCacheMiss) {
		return rng, err
	}

	m.logger.Debug().Str("key", key.String()).Msg("Range cache miss")
	if err := m.Set(ctx, key, rng); err != nil {
		return rng, err
	}
	return rng, nil
}
