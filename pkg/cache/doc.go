// Package cache wraps the Redis tier used by the price service.
//
// The client exposes exactly the operations the caching protocol needs:
//
// - String get/set with TTL for the per-item price projections
// - Hash set-field/get-all for the latest-updated-prices records
// - Key enumeration by glob pattern
// - Flush-all for the startup cache clear
// - Prometheus metrics for observability
//
// # Basic Usage
//
//	rdb := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//	c := cache.New(rdb)
//
//	val, err := c.Get(ctx, cache.ItemKey(42))
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fall back to the document store
//	}
//
// # Key Namespaces
//
//   - item:<item_id>           JSON-serialized price list for one item
//   - updated_prices:<item_id> hash of store_id -> latest recorded price
//
// # Metrics
//
// The client exports Prometheus metrics:
//
//   - price_cache_hits_total{layer="redis"} - Cache hits
//   - price_cache_misses_total - Cache misses
//   - price_cache_errors_total{operation} - Cache operation errors
package cache
