package repository

import (
	"context"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
)

// TransactionRepository is the persistence port for Transaction.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	List(ctx context.Context) ([]entity.Transaction, error)
	// ListByDateRange returns transactions with from <= date <= to (YYYY-MM-DD
	// strings compare lexicographically).
	ListByDateRange(ctx context.Context, from, to string) ([]entity.Transaction, error)
	// Delete removes the transaction and returns the removed document.
	Delete(ctx context.Context, id string) (*entity.Transaction, error)
}
