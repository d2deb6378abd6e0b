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

// ProductUseCase CRUD for menu products. Deletes are soft: an inactive
// product is invisible to every read and counts as not found.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validate checks the shared create/update rules and returns the trimmed name.
func (uc *ProductUseCase) validate(in dto.ProductRequest) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == 0 || in.Category == "" {
		return "", domain.ErrInvalidInput
	}
	if in.Price < entity.MinProductPrice {
		return "", domain.ErrPriceBelowMinimum
	}
	if !entity.ValidCategory(in.Category) {
		return "", domain.ErrInvalidCategory
	}
	return name, nil
}

// Create validates and inserts a new product. Name uniqueness is checked
// among active products only, so a soft-deleted product's name can be reused.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*entity.Product, error) {
	name, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	existing, _ := uc.repo.FindActiveByName(ctx, name, "")
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	image := in.Image
	if image == "" {
		image = entity.DefaultProductImage
	}
	now := time.Now()
	product := &entity.Product{
		Name:        name,
		Price:       in.Price,
		Category:    in.Category,
		Image:       image,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID fetches one product; inactive products count as not found.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List returns every active product, newest first.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.repo.ListActive(ctx)
}

// ListByCategory returns active products of one category, newest first.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return uc.repo.ListActiveByCategory(ctx, category)
}

// Update validates and replaces every field, re-checking name uniqueness with
// the target itself excluded. An omitted image keeps the current one.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*entity.Product, error) {
	name, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.FindActiveByName(ctx, name, id)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product.Name = name
	product.Price = in.Price
	product.Category = in.Category
	if in.Image != "" {
		product.Image = in.Image
	}
	product.Description = in.Description
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete hides the product (isActive=false) and returns it. Deleting an
// already hidden product is not found, so the operation is not repeatable.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	product.IsActive = false
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
