package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/dto"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/repository"
)

// AuthUseCase registration and login against the users collection. Login is
// stateless: no session or token is issued, the caller just gets a minimal
// user projection back.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Register hashes the password with bcrypt and persists a new user. Returns
// ErrPasswordMismatch when the confirmation differs and ErrDuplicate when the
// email is already registered.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	if in.FullName == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	if in.Password != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, _ := uc.userRepo.FindByEmail(ctx, email)
	if existing != nil {
		return domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		FullName:  strings.TrimSpace(in.FullName),
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	return uc.userRepo.Create(ctx, user)
}

// Login matches the identifier against email or phone and compares the bcrypt
// hash. Every failure is the same ErrInvalidCredentials so callers cannot
// probe which accounts exist.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserInfo, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmailOrPhone(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.UserInfo{
		ID:       user.ID.Hex(),
		FullName: user.FullName,
		Email:    user.Email,
	}, nil
}
