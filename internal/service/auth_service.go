package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, name, password string) (*model.User, error)
	EnsureAdmin(ctx context.Context, name, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a user with role "user". A name or email that is already
// taken yields ErrUserAlreadyExists and no row is written.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	return s.create(ctx, name, email, password, model.RoleUser)
}

// Login returns the user whose name matches exactly and whose password
// matches the stored hash.
func (s *authService) Login(ctx context.Context, name, password string) (*model.User, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin creates the named admin account, or promotes an existing
// account with that name. The password of an existing account is kept.
func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing == nil {
		return s.create(ctx, name, email, password, model.RoleAdmin)
	}
	if existing.IsAdmin() {
		return existing, nil
	}

	existing.Role = model.RoleAdmin
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	return existing, nil
}

func (s *authService) create(ctx context.Context, name, email, password, role string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
