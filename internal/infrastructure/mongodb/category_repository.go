package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo Mongo adapter for CategoryRepository.
type CategoryRepo struct {
	col *mongo.Collection
}

// NewCategoryRepository builds the adapter.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{col: db.Collection(CollCategories)}
}

// Create inserts a new category. A maDanhMuc collision on the unique index
// surfaces as domain.ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID fetches one category, (nil, nil) when absent.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var c entity.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// FindByCode fetches a category by maDanhMuc, excluding excludeID when set.
func (r *CategoryRepo) FindByCode(ctx context.Context, code, excludeID string) (*entity.Category, error) {
	filter := bson.M{"maDanhMuc": code}
	if excludeID != "" {
		oid, err := parseID(excludeID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	var c entity.Category
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category by code: %w", err)
	}
	return &c, nil
}

// List returns every category, newest first.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	return r.find(ctx, bson.M{})
}

// Search matches keyword case-insensitively against maDanhMuc and tenDanhMuc,
// newest first.
func (r *CategoryRepo) Search(ctx context.Context, keyword string) ([]entity.Category, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"maDanhMuc": pattern},
		bson.M{"tenDanhMuc": pattern},
	}})
}

func (r *CategoryRepo) find(ctx context.Context, filter bson.M) ([]entity.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	list := []entity.Category{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return list, nil
}

// Update replaces every field of the category. domain.ErrNotFound when the id
// matches nothing.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the category and returns the removed document.
func (r *CategoryRepo) Delete(ctx context.Context, id string) (*entity.Category, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var c entity.Category
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return &c, nil
}
