package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks range cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagewindow_cache_hits_total",
			Help: "Total number of range cache hits",
		},
	)

	// CacheMisses tracks range cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagewindow_cache_misses_total",
			Help: "Total number of range cache misses",
		},
	)

	// CacheBytesWritten counts encoded bytes stored by Set. Expiry and
	// deletion do not subtract from it.
	CacheBytesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagewindow_cache_written_bytes_total",
			Help: "Total bytes written to the range cache",
		},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagewindow_cache_errors_total",
			Help: "Total number of range cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
