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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo Mongo adapter for TransactionRepository.
type TransactionRepo struct {
	col *mongo.Collection
}

// NewTransactionRepository builds the adapter.
func NewTransactionRepository(db *mongo.Database) *TransactionRepo {
	return &TransactionRepo{col: db.Collection(CollTransactions)}
}

// Create inserts a new ledger entry.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	res, err := r.col.InsertOne(ctx, tx)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	tx.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns every transaction, newest first.
func (r *TransactionRepo) List(ctx context.Context) ([]entity.Transaction, error) {
	return r.find(ctx, bson.M{})
}

// ListByDateRange returns transactions with from <= date <= to. Dates are
// YYYY-MM-DD strings, so lexicographic comparison is chronological.
func (r *TransactionRepo) ListByDateRange(ctx context.Context, from, to string) ([]entity.Transaction, error) {
	return r.find(ctx, bson.M{"date": bson.M{"$gte": from, "$lte": to}})
}

func (r *TransactionRepo) find(ctx context.Context, filter bson.M) ([]entity.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	list := []entity.Transaction{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return list, nil
}

// Delete removes the transaction and returns the removed document.
func (r *TransactionRepo) Delete(ctx context.Context, id string) (*entity.Transaction, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var t entity.Transaction
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	return &t, nil
}
