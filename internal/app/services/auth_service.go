package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/devfolio/internal/app/models"
	"github.com/emre/devfolio/internal/app/repositories"
	"github.com/emre/devfolio/internal/pkg/apperrors"
	"github.com/emre/devfolio/internal/pkg/auth"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id int64) (*models.Admin, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	adminRepo *repositories.AdminRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo *repositories.AdminRepository) AuthService {
	return &authServiceImpl{
		adminRepo: adminRepo,
	}
}

// Login verifies the submitted credentials against the stored hash.
// An unknown username and a wrong password both map to
// apperrors.ErrInvalidCredentials so the login page gives nothing away.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !auth.CheckPassword(admin.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return admin, nil
}

// GetAdminByID loads an admin account by its id
func (s *authServiceImpl) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}
