// Package store adapts the authoritative MongoDB document store holding
// catalog items and their per-store prices.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/nearbyprices/price-service/pkg/logging"
	"github.com/nearbyprices/price-service/pkg/prices"
)

const itemsCollection = "items"

// Store wraps the MongoDB connection and the items collection.
// It satisfies prices.Store.
type Store struct {
	client *mongo.Client
	items  *mongo.Collection
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	logger := logging.NewLogger("store")
	logger.Info().Str("database", database).Msg("connected to MongoDB")

	return &Store{
		client: client,
		items:  client.Database(database).Collection(itemsCollection),
	}, nil
}

// AllItems returns every item in the catalog. Used by the warm-up.
func (s *Store) AllItems(ctx context.Context) ([]prices.Item, error) {
	cursor, err := s.items.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find all items: %w", err)
	}
	defer cursor.Close(ctx)

	var all []prices.Item
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return all, nil
}

// ItemByID returns the item with the given item_id.
// Returns prices.ErrItemNotFound when no document matches.
func (s *Store) ItemByID(ctx context.Context, itemID int64) (prices.Item, error) {
	var item prices.Item
	err := s.items.FindOne(ctx, bson.D{{Key: "item_id", Value: itemID}}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return prices.Item{}, prices.ErrItemNotFound
		}
		return prices.Item{}, fmt.Errorf("find item %d: %w", itemID, err)
	}
	return item, nil
}

// UpdatePrice sets the price of one (item, store) pair with a positional
// field update, not a document rewrite. The filter matches both the item
// and the nested store, so the $set is atomic at the field level.
// Returns prices.ErrStoreNotFound when no document matches the pair.
func (s *Store) UpdatePrice(ctx context.Context, itemID, storeID int64, price float64) error {
	filter := bson.D{
		{Key: "item_id", Value: itemID},
		{Key: "prices.store.store_id", Value: storeID},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "prices.$.price", Value: price}}},
	}

	result, err := s.items.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update price for item %d store %d: %w", itemID, storeID, err)
	}
	if result.MatchedCount == 0 {
		return prices.ErrStoreNotFound
	}
	return nil
}

// Ping verifies the MongoDB connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
