package repository

import (
	"context"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
)

// CategoryRepository is the persistence port for Category.
// Lookups return (nil, nil) when no document matches.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// FindByCode looks up a category by maDanhMuc, skipping excludeID when not empty
	// (self-exclusion on update).
	FindByCode(ctx context.Context, code, excludeID string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	// Search matches keyword case-insensitively against maDanhMuc and tenDanhMuc.
	Search(ctx context.Context, keyword string) ([]entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// Delete removes the category and returns the removed document.
	Delete(ctx context.Context, id string) (*entity.Category, error)
}
