// Package metrics exposes the Prometheus registry used by pagewindow.
// Metrics are defined in their respective packages (pagination, cache) and
// registered through promauto; this package serves them and documents them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by pagewindow.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Handler serves every registered metric in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Pagination Metrics (pkg/pagination):
//   - pagewindow_navigations_total{op} (Counter): Navigation calls by operation (set, next, prev, first, last)
//   - pagewindow_clamped_total{bound} (Counter): Navigations clamped to the lower or upper page bound
//   - pagewindow_range_computations_total{shape} (Counter): Computed ranges by shape (full, left, right, both)
//
// Cache Metrics (pkg/cache):
//   - pagewindow_cache_hits_total (Counter): Range cache hits
//   - pagewindow_cache_misses_total (Counter): Range cache misses
//   - pagewindow_cache_written_bytes_total (Counter): Bytes written to the range cache
//   - pagewindow_cache_errors_total{operation} (Counter): Cache operation errors
//
// Server Metrics (cmd/pagewindow-server):
//   - pagewindow_http_requests_total{handler, code} (Counter): HTTP requests by handler and status
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(pagewindow_cache_hits_total[5m])) /
//   (sum(rate(pagewindow_cache_hits_total[5m])) + sum(rate(pagewindow_cache_misses_total[5m])))
//
//   # Share of navigations that overshoot
//   sum(rate(pagewindow_clamped_total[5m])) / sum(rate(pagewindow_navigations_total[5m]))
//
//   # Request Error Rate
//   sum(rate(pagewindow_http_requests_total{code=~"4..|5.."}[5m]))
