package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/dto"
	"github.com/wekesamabwi/theboat_backend/internal/models"
	"github.com/wekesamabwi/theboat_backend/internal/utils"
)

// dummyHash is a bcrypt hash of a throwaway value. Authenticate compares
// against it when the email is unknown so both paths cost a bcrypt round.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService provides registration and credential checks over the
// credential store.
type AuthService struct {
	userRepo ports.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo ports.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Ensure AuthService implements ports.AuthService
var _ ports.AuthService = (*AuthService)(nil)

// Register creates a new user. The password is hashed before it reaches the
// store; the raw value is never persisted. Duplicate usernames and emails
// are not rejected.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	role := models.UserRole(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: role must be Guest or Trader", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &user, nil
}

// Authenticate returns the user whose email and password match, or
// apperrors.ErrUnauthorized. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CheckPasswordHash(password, dummyHash)
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GetUserByID resolves an authenticated user ID back to its user.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}
