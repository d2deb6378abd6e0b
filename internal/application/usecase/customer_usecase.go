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

// CustomerUseCase CRUD for customers. No uniqueness constraint.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func normalizeCustomer(in dto.CustomerRequest) (ten, sdt, email, diaChi string) {
	return strings.TrimSpace(in.Ten),
		strings.TrimSpace(in.Sdt),
		strings.ToLower(strings.TrimSpace(in.Email)),
		strings.TrimSpace(in.DiaChi)
}

// Create validates and inserts a new customer.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	ten, sdt, email, diaChi := normalizeCustomer(in)
	if ten == "" || sdt == "" || email == "" || diaChi == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		Ten:       ten,
		Sdt:       sdt,
		Email:     email,
		DiaChi:    diaChi,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List returns every customer, newest first.
func (uc *CustomerUseCase) List(ctx context.Context) ([]entity.Customer, error) {
	return uc.repo.List(ctx)
}

// Update validates and replaces every field of the customer.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*entity.Customer, error) {
	ten, sdt, email, diaChi := normalizeCustomer(in)
	if ten == "" || sdt == "" || email == "" || diaChi == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Ten = ten
	customer.Sdt = sdt
	customer.Email = email
	customer.DiaChi = diaChi
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes the customer and returns the removed document.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.repo.Delete(ctx, id)
}
