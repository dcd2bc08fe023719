package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"saccoreg/internal/auth"
	apperrors "saccoreg/internal/errors"
	"saccoreg/internal/model"
	"saccoreg/internal/repository"
)

// ErrUserAlreadyExists is returned when a username or email is taken.
var ErrUserAlreadyExists = errors.New("username or email already exists")

// UserInput carries the fields accepted for admin user writes.
type UserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	IsActive *bool
}

// RoleInfo describes one role and its granted permissions for the role
// listing endpoint.
type RoleInfo struct {
	Role        auth.Role         `json:"role"`
	Permissions []auth.Permission `json:"permissions"`
}

// UserService handles admin user management.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, input UserInput, createdBy uint) (*model.User, error)
	Update(ctx context.Context, id uint, input UserInput) (*model.User, error)
	Deactivate(ctx context.Context, id uint) error
	Roles() []RoleInfo
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List returns all admin users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Create registers a new admin user with a hashed password. The role must
// be one of the recognized values.
func (s *userService) Create(ctx context.Context, input UserInput, createdBy uint) (*model.User, error) {
	role := auth.Role(strings.TrimSpace(input.Role))
	if !role.Valid() {
		return nil, apperrors.ErrUnknownRole
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(role),
		IsActive:     true,
	}
	if createdBy != 0 {
		user.CreatedBy = &createdBy
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update applies the non-empty fields of input to an existing user.
func (s *userService) Update(ctx context.Context, id uint, input UserInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if roleStr := strings.TrimSpace(input.Role); roleStr != "" {
		role := auth.Role(roleStr)
		if !role.Valid() {
			return nil, apperrors.ErrUnknownRole
		}
		user.Role = string(role)
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		user.Email = email
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Deactivate disables an account without deleting its audit references.
func (s *userService) Deactivate(ctx context.Context, id uint) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	user.IsActive = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// Roles lists every recognized role with its static permission set.
func (s *userService) Roles() []RoleInfo {
	infos := make([]RoleInfo, 0, len(auth.AllRoles))
	for _, role := range auth.AllRoles {
		infos = append(infos, RoleInfo{Role: role, Permissions: role.Permissions()})
	}
	return infos
}
