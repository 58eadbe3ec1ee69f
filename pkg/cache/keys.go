package cache

import "strconv"

const (
	itemKeyPrefix          = "item:"
	updatedPricesKeyPrefix = "updated_prices:"

	// UpdatedPricesPattern matches every latest-updated-prices hash.
	UpdatedPricesPattern = updatedPricesKeyPrefix + "*"
)

// ItemKey returns the cache key holding an item's serialized price list.
func ItemKey(itemID int64) string {
	return itemKeyPrefix + strconv.FormatInt(itemID, 10)
}

// UpdatedPricesKey returns the hash key holding an item's latest recorded
// price per store.
func UpdatedPricesKey(itemID int64) string {
	return updatedPricesKeyPrefix + strconv.FormatInt(itemID, 10)
}
