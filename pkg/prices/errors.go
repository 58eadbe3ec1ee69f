package prices

import "errors"

// Sentinel errors for the pricing domain. The API layer maps these to
// client-facing status codes via errors.Is; everything else is treated as
// an upstream failure.
var (
	// ErrItemNotFound is returned when no item exists for the given item_id.
	ErrItemNotFound = errors.New("item not found")

	// ErrStoreNotFound is returned when an item has no price entry for the
	// given store_id.
	ErrStoreNotFound = errors.New("store not found for the item")

	// ErrInvalidPrice is returned when a price is negative or not a finite
	// number. Zero is a legitimate price.
	ErrInvalidPrice = errors.New("invalid price")
)
