package prices

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nearbyprices/price-service/pkg/cache"
	"github.com/nearbyprices/price-service/pkg/logging"
)

// Recorder keeps the latest recorded price per (item, store) pair in a
// per-item cache hash. It is not a chronological log: repeated updates to
// the same pair overwrite the prior record in place.
type Recorder struct {
	cache  Cache
	logger zerolog.Logger
}

// NewRecorder creates a price history recorder on top of the cache tier.
func NewRecorder(c Cache) *Recorder {
	if c == nil {
		panic("cache cannot be nil")
	}
	return &Recorder{
		cache:  c,
		logger: logging.NewLogger("price-recorder"),
	}
}

// Record stores price as the latest recorded value for (itemID, storeID).
// Failures are logged and swallowed; a recording failure never blocks the
// price update that triggered it.
func (r *Recorder) Record(ctx context.Context, itemID, storeID int64, price float64) {
	key := cache.UpdatedPricesKey(itemID)
	field := strconv.FormatInt(storeID, 10)
	value := strconv.FormatFloat(price, 'f', -1, 64)

	if err := r.cache.HSet(ctx, key, field, value); err != nil {
		r.logger.Error().Err(err).
			Int64("item_id", itemID).
			Int64("store_id", storeID).
			Msg("recording updated price failed")
		return
	}
	r.logger.Debug().
		Int64("item_id", itemID).
		Int64("store_id", storeID).
		Str("price", value).
		Msg("updated price recorded")
}

// FullHistory returns one map per item that ever had a price update, each
// mapping store_id to the latest recorded price. No ordering guarantee
// across items; an empty (non-nil) slice when nothing was ever recorded.
func (r *Recorder) FullHistory(ctx context.Context) ([]map[string]string, error) {
	keys, err := r.cache.Keys(ctx, cache.UpdatedPricesPattern)
	if err != nil {
		return nil, fmt.Errorf("enumerating updated price keys: %w", err)
	}

	history := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		fields, err := r.cache.HGetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("reading updated prices %q: %w", key, err)
		}
		history = append(history, fields)
	}
	return history, nil
}
