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

// EmployeeUseCase CRUD for employees. Email is unique.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase builds the use case.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func normalizeEmployee(in dto.EmployeeRequest) (hoTen, email, soDienThoai, chucVu string) {
	return strings.TrimSpace(in.HoTen),
		strings.ToLower(strings.TrimSpace(in.Email)),
		strings.TrimSpace(in.SoDienThoai),
		strings.TrimSpace(in.ChucVu)
}

// Create validates and inserts a new employee. Email collisions are rejected
// before the write and again by the unique index under races.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*entity.Employee, error) {
	hoTen, email, soDienThoai, chucVu := normalizeEmployee(in)
	if hoTen == "" || email == "" || soDienThoai == "" || chucVu == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.FindByEmail(ctx, email, "")
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	employee := &entity.Employee{
		HoTen:       hoTen,
		Email:       email,
		SoDienThoai: soDienThoai,
		ChucVu:      chucVu,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// List returns every employee, newest first.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]entity.Employee, error) {
	return uc.repo.List(ctx)
}

// Update validates and replaces every field, re-checking email uniqueness with
// the target itself excluded so an employee can keep their own email.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*entity.Employee, error) {
	hoTen, email, soDienThoai, chucVu := normalizeEmployee(in)
	if hoTen == "" || email == "" || soDienThoai == "" || chucVu == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.FindByEmail(ctx, email, id)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	employee.HoTen = hoTen
	employee.Email = email
	employee.SoDienThoai = soDienThoai
	employee.ChucVu = chucVu
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Delete removes the employee and returns the removed document.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) (*entity.Employee, error) {
	return uc.repo.Delete(ctx, id)
}
