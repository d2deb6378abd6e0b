package repository

import (
	"context"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
)

// EmployeeRepository is the persistence port for Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// FindByEmail looks up an employee by email, skipping excludeID when not empty.
	FindByEmail(ctx context.Context, email, excludeID string) (*entity.Employee, error)
	List(ctx context.Context) ([]entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) (*entity.Employee, error)
}
