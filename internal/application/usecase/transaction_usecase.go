package usecase

import (
	"context"
	"time"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/repository"
)

// TransactionUseCase append/list/delete over the cash-book ledger.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase builds the use case.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create validates the schema-required fields and appends a ledger entry.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.TransactionRequest) (*entity.Transaction, error) {
	if !entity.ValidTransactionType(in.Type) || in.Category == "" || in.Amount == nil || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	tx := &entity.Transaction{
		Type:        in.Type,
		Category:    in.Category,
		Amount:      *in.Amount,
		Description: in.Description,
		Date:        in.Date,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List returns every transaction, newest first.
func (uc *TransactionUseCase) List(ctx context.Context) ([]entity.Transaction, error) {
	return uc.repo.List(ctx)
}

// Delete removes one transaction. A malformed id is ErrInvalidID, a
// well-formed id with no match is ErrNotFound.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) (*entity.Transaction, error) {
	return uc.repo.Delete(ctx, id)
}
