package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/nearbyprices/price-service/pkg/cache"
	"github.com/nearbyprices/price-service/pkg/logging"
)

// Store is the authoritative document store the manager reads from and
// writes through to.
type Store interface {
	// AllItems returns every item in the catalog.
	AllItems(ctx context.Context) ([]Item, error)

	// ItemByID returns the item with the given item_id, or ErrItemNotFound.
	ItemByID(ctx context.Context, itemID int64) (Item, error)

	// UpdatePrice sets the price of one (item, store) pair with a targeted
	// field update. Returns ErrStoreNotFound if the pair does not exist.
	UpdatePrice(ctx context.Context, itemID, storeID int64, price float64) error
}

// Cache is the fast key-value/hash tier the manager caches into.
// *cache.Client satisfies it; tests inject in-memory fakes.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	HSet(ctx context.Context, key, field, value string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// DefaultTTL is how long cached price lists stay fresh unless configured
// otherwise.
const DefaultTTL = time.Hour

// Manager orchestrates read-through and write-through between the document
// store and the cache for per-item price lists.
type Manager struct {
	store    Store
	cache    Cache
	recorder *Recorder
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewManager creates a price cache manager. A non-positive ttl falls back
// to DefaultTTL.
func NewManager(store Store, c Cache, recorder *Recorder, ttl time.Duration) *Manager {
	if store == nil {
		panic("store cannot be nil")
	}
	if c == nil {
		panic("cache cannot be nil")
	}
	if recorder == nil {
		panic("recorder cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:    store,
		cache:    c,
		recorder: recorder,
		ttl:      ttl,
		logger:   logging.NewLogger("price-manager"),
	}
}

// WarmUp preloads every item's price list into the cache, overwriting any
// existing entries. Errors are logged and abort the remaining batch; they
// are never propagated, so a failed warm-up does not prevent serving.
func (m *Manager) WarmUp(ctx context.Context) {
	items, err := m.store.AllItems(ctx)
	if err != nil {
		m.logger.Error().Err(err).Msg("warm-up: fetching items failed")
		return
	}
	m.logger.Info().Int("count", len(items)).Msg("warm-up: items fetched from store")

	for _, item := range items {
		if err := m.cacheItemPrices(ctx, item); err != nil {
			m.logger.Error().Err(err).Int64("item_id", item.ItemID).
				Msg("warm-up: caching item failed, aborting batch")
			return
		}
	}
	m.logger.Info().Int("count", len(items)).Msg("warm-up: all items cached")
}

// ItemPrices returns the price list for an item, serving from the cache
// when possible. On a cache miss the store is queried and the result is
// cached before returning (read-through). A failed cache write after a
// successful store read is logged and the store value is still returned.
func (m *Manager) ItemPrices(ctx context.Context, itemID int64) ([]PriceEntry, error) {
	key := cache.ItemKey(itemID)

	raw, err := m.cache.Get(ctx, key)
	switch {
	case err == nil:
		var entries []PriceEntry
		if jsonErr := json.Unmarshal([]byte(raw), &entries); jsonErr != nil {
			// Corrupt entry: fall through to the store and let the
			// read-through overwrite it.
			m.logger.Warn().Err(jsonErr).Str("key", key).
				Msg("corrupt cache entry, refreshing from store")
		} else {
			m.logger.Debug().Int64("item_id", itemID).Msg("price list served from cache")
			if entries == nil {
				entries = []PriceEntry{}
			}
			return entries, nil
		}
	case errors.Is(err, cache.ErrCacheMiss):
		m.logger.Debug().Int64("item_id", itemID).Msg("cache miss, fetching from store")
	default:
		return nil, fmt.Errorf("cache lookup for item %d: %w", itemID, err)
	}

	item, err := m.store.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := m.cacheItemPrices(ctx, item); err != nil {
		m.logger.Warn().Err(err).Int64("item_id", itemID).
			Msg("caching price list after store read failed")
	}

	if item.Prices == nil {
		return []PriceEntry{}, nil
	}
	return item.Prices, nil
}

// UpdatePrice sets the price of one (item, store) pair. The store is always
// updated before the cache; recording the update and refreshing the cache
// are best-effort and never fail the request.
func (m *Manager) UpdatePrice(ctx context.Context, itemID, storeID int64, price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}

	item, err := m.store.ItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	if !hasStore(item, storeID) {
		return ErrStoreNotFound
	}

	if err := m.store.UpdatePrice(ctx, itemID, storeID, price); err != nil {
		return fmt.Errorf("updating price for item %d store %d: %w", itemID, storeID, err)
	}

	m.recorder.Record(ctx, itemID, storeID, price)

	// Refresh the cache from the store so a read-own-write within this
	// request observes the new price. Best-effort from here on.
	updated, err := m.store.ItemByID(ctx, itemID)
	if err != nil {
		m.logger.Warn().Err(err).Int64("item_id", itemID).
			Msg("re-fetching item after update failed, cache left stale")
		return nil
	}
	if err := m.cacheItemPrices(ctx, updated); err != nil {
		m.logger.Warn().Err(err).Int64("item_id", itemID).
			Msg("refreshing cache after update failed, cache left stale")
	}
	return nil
}

// cacheItemPrices serializes an item's price list and overwrites its cache
// entry.
func (m *Manager) cacheItemPrices(ctx context.Context, item Item) error {
	entries := item.Prices
	if entries == nil {
		entries = []PriceEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal price list: %w", err)
	}
	if err := m.cache.Set(ctx, cache.ItemKey(item.ItemID), string(data), m.ttl); err != nil {
		return err
	}
	return nil
}

func hasStore(item Item, storeID int64) bool {
	for _, entry := range item.Prices {
		if entry.Store.StoreID == storeID {
			return true
		}
	}
	return false
}
