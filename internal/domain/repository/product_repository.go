package repository

import (
	"context"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
)

// ProductRepository is the persistence port for Product.
// GetByID returns the document regardless of isActive; visibility of inactive
// products is decided by the use case.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// FindActiveByName looks up an active product by exact name, skipping excludeID
	// when not empty.
	FindActiveByName(ctx context.Context, name, excludeID string) (*entity.Product, error)
	ListActive(ctx context.Context) ([]entity.Product, error)
	ListActiveByCategory(ctx context.Context, category string) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
}
