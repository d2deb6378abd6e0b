package repository

import (
	"context"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
)

// UserRepository is the persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByEmailOrPhone matches the login identifier against either field.
	FindByEmailOrPhone(ctx context.Context, username string) (*entity.User, error)
}
