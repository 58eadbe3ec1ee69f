package cache

import "testing"

func TestItemKey(t *testing.T) {
	tests := []struct {
		itemID int64
		want   string
	}{
		{1, "item:1"},
		{42, "item:42"},
		{1234567890, "item:1234567890"},
	}

	for _, tt := range tests {
		if got := ItemKey(tt.itemID); got != tt.want {
			t.Errorf("ItemKey(%d) = %q, want %q", tt.itemID, got, tt.want)
		}
	}
}

func TestUpdatedPricesKey(t *testing.T) {
	if got := UpdatedPricesKey(7); got != "updated_prices:7" {
		t.Errorf("UpdatedPricesKey(7) = %q, want %q", got, "updated_prices:7")
	}
}

func TestUpdatedPricesPattern_MatchesKeys(t *testing.T) {
	// The enumeration pattern must cover every key the recorder writes.
	key := UpdatedPricesKey(99)
	prefix := UpdatedPricesPattern[:len(UpdatedPricesPattern)-1]
	if key[:len(prefix)] != prefix {
		t.Errorf("Pattern prefix %q does not cover key %q", prefix, key)
	}
}
