// Package testutil provides in-memory fakes of the store and cache
// adapters for testing the caching protocol without real backends.
package testutil

import (
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"github.com/nearbyprices/price-service/pkg/cache"
	"github.com/nearbyprices/price-service/pkg/prices"
)

// ErrUnavailable simulates a store or cache outage.
var ErrUnavailable = errors.New("backend unavailable")

// FakeStore is an in-memory prices.Store with fault injection.
type FakeStore struct {
	mu    sync.Mutex
	items map[int64]prices.Item

	// Down makes every operation fail with ErrUnavailable.
	Down bool

	// Call counters for asserting which paths touched the store.
	FindCalls   int
	UpdateCalls int
}

// NewFakeStore creates a fake store seeded with the given items.
func NewFakeStore(items ...prices.Item) *FakeStore {
	s := &FakeStore{items: make(map[int64]prices.Item)}
	for _, item := range items {
		s.items[item.ItemID] = cloneItem(item)
	}
	return s
}

// SetDown toggles the simulated outage.
func (s *FakeStore) SetDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Down = down
}

// AllItems implements prices.Store.
func (s *FakeStore) AllItems(ctx context.Context) ([]prices.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FindCalls++
	if s.Down {
		return nil, ErrUnavailable
	}
	all := make([]prices.Item, 0, len(s.items))
	for _, item := range s.items {
		all = append(all, cloneItem(item))
	}
	return all, nil
}

// ItemByID implements prices.Store.
func (s *FakeStore) ItemByID(ctx context.Context, itemID int64) (prices.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FindCalls++
	if s.Down {
		return prices.Item{}, ErrUnavailable
	}
	item, ok := s.items[itemID]
	if !ok {
		return prices.Item{}, prices.ErrItemNotFound
	}
	return cloneItem(item), nil
}

// UpdatePrice implements prices.Store.
func (s *FakeStore) UpdatePrice(ctx context.Context, itemID, storeID int64, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++
	if s.Down {
		return ErrUnavailable
	}
	item, ok := s.items[itemID]
	if !ok {
		return prices.ErrItemNotFound
	}
	for i, entry := range item.Prices {
		if entry.Store.StoreID == storeID {
			item.Prices[i].Price = price
			s.items[itemID] = item
			return nil
		}
	}
	return prices.ErrStoreNotFound
}

// PriceOf returns the stored price for a (item, store) pair, for asserting
// that rejected updates left the store untouched.
func (s *FakeStore) PriceOf(itemID, storeID int64) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok {
		return 0, false
	}
	for _, entry := range item.Prices {
		if entry.Store.StoreID == storeID {
			return entry.Price, true
		}
	}
	return 0, false
}

func cloneItem(item prices.Item) prices.Item {
	clone := item
	clone.Prices = make([]prices.PriceEntry, len(item.Prices))
	copy(clone.Prices, item.Prices)
	return clone
}

// FakeCache is an in-memory prices.Cache with fault injection. TTLs are
// recorded but not enforced; expiry behavior belongs to Redis.
type FakeCache struct {
	mu     sync.Mutex
	values map[string]string
	hashes map[string]map[string]string

	// Down makes every operation fail with ErrUnavailable.
	Down bool

	// SetErr, when non-nil, fails only Set calls. Lets tests exercise the
	// best-effort write-through paths while reads keep working.
	SetErr error

	SetCalls  int
	HSetCalls int
}

// NewFakeCache creates an empty fake cache.
func NewFakeCache() *FakeCache {
	return &FakeCache{
		values: make(map[string]string),
		hashes: make(map[string]map[string]string),
	}
}

// Get implements prices.Cache.
func (c *FakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return "", ErrUnavailable
	}
	val, ok := c.values[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return val, nil
}

// Set implements prices.Cache.
func (c *FakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetCalls++
	if c.Down {
		return ErrUnavailable
	}
	if c.SetErr != nil {
		return c.SetErr
	}
	c.values[key] = value
	return nil
}

// HSet implements prices.Cache.
func (c *FakeCache) HSet(ctx context.Context, key, field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.HSetCalls++
	if c.Down {
		return ErrUnavailable
	}
	hash, ok := c.hashes[key]
	if !ok {
		hash = make(map[string]string)
		c.hashes[key] = hash
	}
	hash[field] = value
	return nil
}

// HGetAll implements prices.Cache.
func (c *FakeCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return nil, ErrUnavailable
	}
	out := make(map[string]string, len(c.hashes[key]))
	for field, value := range c.hashes[key] {
		out[field] = value
	}
	return out, nil
}

// Keys implements prices.Cache using glob matching like Redis KEYS.
func (c *FakeCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Down {
		return nil, ErrUnavailable
	}
	var keys []string
	for key := range c.values {
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	for key := range c.hashes {
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Value returns the raw cached string for a key, for asserting cache state.
func (c *FakeCache) Value(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.values[key]
	return val, ok
}

// Hash returns a copy of a stored hash, for asserting recorder state.
func (c *FakeCache) Hash(key string) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.hashes[key]))
	for field, value := range c.hashes[key] {
		out[field] = value
	}
	return out
}
