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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo Mongo adapter for CustomerRepository.
type CustomerRepo struct {
	col *mongo.Collection
}

// NewCustomerRepository builds the adapter.
func NewCustomerRepository(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{col: db.Collection(CollCustomers)}
}

// Create inserts a new customer.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	res, err := r.col.InsertOne(ctx, customer)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	customer.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID fetches one customer, (nil, nil) when absent.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var c entity.Customer
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List returns every customer, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	list := []entity.Customer{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return list, nil
}

// Update replaces every field of the customer.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the customer and returns the removed document.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (*entity.Customer, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var c entity.Customer
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete customer: %w", err)
	}
	return &c, nil
}
