package prices

// StoreRef identifies the retailer store a price belongs to.
// Store documents carry additional descriptive fields; only the identifier
// and name are projected here, unknown fields are ignored.
type StoreRef struct {
	StoreID int64  `bson:"store_id" json:"store_id"`
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
}

// PriceEntry is one (store, price) pair within an item's price list.
// At most one entry exists per store_id for a given item.
type PriceEntry struct {
	Store StoreRef `bson:"store" json:"store"`
	Price float64  `bson:"price" json:"price"`
}

// Item is a catalog product with its per-store price list.
// Items live in the document store collection "items"; the cache holds a
// derived copy of the Prices slice keyed by item_id.
type Item struct {
	ItemID int64        `bson:"item_id" json:"item_id"`
	Prices []PriceEntry `bson:"prices" json:"prices"`
}
