// Package prices implements the cache-consistency core of the price service.
//
// The Manager orchestrates read-through and write-through between the
// authoritative document store and the Redis cache:
//
//   - Warm-up preloads every item's price list into the cache at startup.
//   - Reads serve from the cache when possible and populate it on miss.
//   - Writes update the store first, then refresh the cache best-effort.
//
// The Recorder keeps a separate per-item hash of the latest recorded price
// per store. It deliberately overwrites in place: repeated updates to the
// same (item, store) pair do not accumulate.
//
// Consistency model: the store is the source of truth and is always updated
// before the cache. Cache refreshes after a store write are best-effort, so
// the two tiers are eventually (not atomically) consistent. Staleness is the
// only tolerated deviation of the cache from the store.
package prices
