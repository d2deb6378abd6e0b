package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/trungnq-dev/coffee-manager-api/pkg/config"
)

// Collection names.
const (
	CollCategories   = "categories"
	CollCustomers    = "customers"
	CollEmployees    = "employees"
	CollProducts     = "products"
	CollTransactions = "transactions"
	CollUsers        = "users"
)

// Connect opens a client, pings the server and returns the configured database.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique indexes the API relies on. The index, not
// the use-case pre-check, is what actually guarantees uniqueness under
// concurrent writes: the write itself fails with a duplicate-key error that
// adapters map to domain.ErrDuplicate.
//
// Product name uniqueness is scoped to isActive=true and stays a best-effort
// pre-check; a plain unique index would also block reusing names of
// soft-deleted products.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		CollCategories: {Keys: bson.D{{Key: "maDanhMuc", Value: 1}}, Options: unique},
		CollEmployees:  {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		CollUsers:      {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}
	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}

// Ping reports whether the store is reachable (used by GET /test).
func Ping(ctx context.Context, db *mongo.Database) error {
	return db.Client().Ping(ctx, readpref.Primary())
}
