package prices_test

import (
	"context"
	"testing"

	"github.com/nearbyprices/price-service/internal/testutil"
	"github.com/nearbyprices/price-service/pkg/cache"
	"github.com/nearbyprices/price-service/pkg/prices"
)

func TestRecord_StoresLatestPrice(t *testing.T) {
	c := testutil.NewFakeCache()
	r := prices.NewRecorder(c)
	ctx := context.Background()

	r.Record(ctx, 1, 95, 19.99)

	hash := c.Hash(cache.UpdatedPricesKey(1))
	if hash["95"] != "19.99" {
		t.Errorf("Recorded price = %q, want %q", hash["95"], "19.99")
	}
}

func TestRecord_OverwritesNotAccumulates(t *testing.T) {
	c := testutil.NewFakeCache()
	r := prices.NewRecorder(c)
	ctx := context.Background()

	r.Record(ctx, 1, 95, 15.00)
	r.Record(ctx, 1, 95, 19.99)

	hash := c.Hash(cache.UpdatedPricesKey(1))
	if len(hash) != 1 {
		t.Fatalf("Expected exactly 1 record after repeated updates, got %d", len(hash))
	}
	if hash["95"] != "19.99" {
		t.Errorf("Latest price = %q, want %q", hash["95"], "19.99")
	}
}

func TestRecord_FailureIsSwallowed(t *testing.T) {
	c := testutil.NewFakeCache()
	c.Down = true
	r := prices.NewRecorder(c)

	// Must not panic; the caller never sees recording failures.
	r.Record(context.Background(), 1, 95, 19.99)
}

func TestFullHistory_CollectsAllItems(t *testing.T) {
	c := testutil.NewFakeCache()
	r := prices.NewRecorder(c)
	ctx := context.Background()

	r.Record(ctx, 1, 95, 19.99)
	r.Record(ctx, 1, 96, 5.25)
	r.Record(ctx, 2, 50, 3)

	history, err := r.FullHistory(ctx)
	if err != nil {
		t.Fatalf("FullHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected history for 2 items, got %d", len(history))
	}

	var sawItem1 bool
	for _, fields := range history {
		if fields["95"] == "19.99" && fields["96"] == "5.25" {
			sawItem1 = true
		}
	}
	if !sawItem1 {
		t.Errorf("History missing item 1 records: %v", history)
	}
}

func TestFullHistory_EmptyIsNotNil(t *testing.T) {
	c := testutil.NewFakeCache()
	r := prices.NewRecorder(c)

	history, err := r.FullHistory(context.Background())
	if err != nil {
		t.Fatalf("FullHistory failed: %v", err)
	}
	if history == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history, got %v", history)
	}
}

func TestFullHistory_CacheOutage(t *testing.T) {
	c := testutil.NewFakeCache()
	c.Down = true
	r := prices.NewRecorder(c)

	if _, err := r.FullHistory(context.Background()); err == nil {
		t.Error("Expected error on cache outage")
	}
}
