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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo Mongo adapter for EmployeeRepository.
type EmployeeRepo struct {
	col *mongo.Collection
}

// NewEmployeeRepository builds the adapter.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{col: db.Collection(CollEmployees)}
}

// Create inserts a new employee. An email collision on the unique index
// surfaces as domain.ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	res, err := r.col.InsertOne(ctx, employee)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	employee.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID fetches one employee, (nil, nil) when absent.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var e entity.Employee
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// FindByEmail fetches an employee by email, excluding excludeID when set.
func (r *EmployeeRepo) FindByEmail(ctx context.Context, email, excludeID string) (*entity.Employee, error) {
	filter := bson.M{"email": email}
	if excludeID != "" {
		oid, err := parseID(excludeID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	var e entity.Employee
	if err := r.col.FindOne(ctx, filter).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by email: %w", err)
	}
	return &e, nil
}

// List returns every employee, newest first.
func (r *EmployeeRepo) List(ctx context.Context) ([]entity.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	list := []entity.Employee{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return list, nil
}

// Update replaces every field of the employee.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": employee.ID}, employee)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the employee and returns the removed document.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var e entity.Employee
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete employee: %w", err)
	}
	return &e, nil
}
