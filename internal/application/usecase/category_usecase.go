package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/repository"
)

// CategoryUseCase CRUD plus keyword search for categories.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create validates and inserts a new category. The code pre-check is an early
// rejection; the unique index catches the race anyway.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*entity.Category, error) {
	ma := strings.TrimSpace(in.MaDanhMuc)
	ten := strings.TrimSpace(in.TenDanhMuc)
	if ma == "" || ten == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.FindByCode(ctx, ma, "")
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		MaDanhMuc:  ma,
		TenDanhMuc: ten,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID fetches one category.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// List returns every category, newest first.
func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	return uc.repo.List(ctx)
}

// Search matches the keyword case-insensitively against code and name.
func (uc *CategoryUseCase) Search(ctx context.Context, keyword string) ([]entity.Category, error) {
	return uc.repo.Search(ctx, keyword)
}

// Update validates and replaces every field, re-checking code uniqueness with
// the target itself excluded.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*entity.Category, error) {
	ma := strings.TrimSpace(in.MaDanhMuc)
	ten := strings.TrimSpace(in.TenDanhMuc)
	if ma == "" || ten == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.FindByCode(ctx, ma, id)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category.MaDanhMuc = ma
	category.TenDanhMuc = ten
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and returns the removed document.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*entity.Category, error) {
	return uc.repo.Delete(ctx, id)
}
