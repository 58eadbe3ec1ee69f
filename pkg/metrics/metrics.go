// Package metrics provides the centralized Prometheus metrics registry for
// the price service. All metrics are defined in their respective packages
// (api, cache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the service.
// All metrics are automatically registered via promauto in their respective
// packages and exposed on /metrics.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - price_cache_hits_total{layer="redis"} (Counter): Cache hits by layer
//   - price_cache_misses_total (Counter): Cache misses
//   - price_cache_errors_total{operation} (Counter): Cache operation errors
//     (get, set, hset, hgetall, keys, flush)
//
// Request Metrics (pkg/api):
//   - price_api_requests_total{method, route, status} (Counter): API requests
//   - price_api_request_duration_seconds{method, route} (Histogram): Latency
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(price_cache_hits_total[5m])) /
//   (sum(rate(price_cache_hits_total[5m])) + sum(rate(price_cache_misses_total[5m])))
//
//   # Request Error Rate
//   sum(rate(price_api_requests_total{status=~"5.."}[5m]))
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(price_api_request_duration_seconds_bucket[5m]))
