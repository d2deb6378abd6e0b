package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo Mongo adapter for ProductRepository. Soft delete is an Update
// that flips isActive; there is no hard delete for products.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository builds the adapter.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(CollProducts)}
}

// Create inserts a new product.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID fetches one product regardless of isActive, (nil, nil) when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var p entity.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// FindActiveByName fetches an active product by exact name, excluding
// excludeID when set.
func (r *ProductRepo) FindActiveByName(ctx context.Context, name, excludeID string) (*entity.Product, error) {
	filter := bson.M{"name": name, "isActive": true}
	if excludeID != "" {
		oid, err := parseID(excludeID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	var p entity.Product
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by name: %w", err)
	}
	return &p, nil
}

// ListActive returns every active product, newest first.
func (r *ProductRepo) ListActive(ctx context.Context) ([]entity.Product, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

// ListActiveByCategory returns active products of one category, newest first.
func (r *ProductRepo) ListActiveByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return r.find(ctx, bson.M{"category": category, "isActive": true})
}

func (r *ProductRepo) find(ctx context.Context, filter bson.M) ([]entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	list := []entity.Product{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return list, nil
}

// Update replaces every field of the product (soft delete included).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
