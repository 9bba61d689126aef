// Package cache stores computed pagination ranges in Redis.
//
// Ranges are cheap to compute but are requested far more often than their
// inputs change, so the HTTP surface keeps them in a shared Redis cache
// keyed by the four range inputs.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	manager := cache.NewManager(redisClient, 5*time.Minute)
//
//	key := cache.RangeKey{Total: 50, Active: 7, Siblings: 1, Boundaries: 1}
//
//	// Get from cache, computing and storing on a miss
//	rng, err := manager.GetOrCompute(ctx, key)
//
// Get returns ErrCacheMiss when the key is absent or expired. Keys are
// normalized the same way pagination.Range normalizes its inputs, so
// equivalent requests share an entry.
//
// # Metrics
//
//   - pagewindow_cache_hits_total - Cache hits
//   - pagewindow_cache_misses_total - Cache misses
//   - pagewindow_cache_written_bytes_total - Bytes written to the cache
//   - pagewindow_cache_errors_total{operation} - Cache operation errors
package cache
