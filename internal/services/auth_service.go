package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/google/uuid"
)

type AuthService struct {
	superAdmins *repository.SuperAdminRepository
	admins      *repository.AdminRepository
	tokens      *auth.TokenService
	passwords   *auth.PasswordHasher
	// dummyHash is compared against when the user does not exist so that
	// unknown users and wrong passwords take comparable time.
	dummyHash string
}

func NewAuthService(
	superAdmins *repository.SuperAdminRepository,
	admins *repository.AdminRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordHasher,
) (*AuthService, error) {
	dummy, err := passwords.Hash(uuid.NewString())
	if err != nil {
		return nil, err
	}
	return &AuthService{
		superAdmins: superAdmins,
		admins:      admins,
		tokens:      tokens,
		passwords:   passwords,
		dummyHash:   dummy,
	}, nil
}

func (s *AuthService) SuperAdminLogin(ctx context.Context, req *dto.SuperAdminLoginRequest) (*dto.AuthResponse, error) {
	sa, err := s.superAdmins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.passwords.Verify(req.Password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load super admin: %w", err)
	}
	if !s.passwords.Verify(req.Password, sa.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Claims{
		AccountID: sa.ID.String(),
		Role:      auth.RoleSuperAdmin,
		Email:     sa.Email,
		Username:  sa.Username,
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserResponse{
			ID:       sa.ID,
			Email:    sa.Email,
			Username: sa.Username,
			Role:     string(auth.RoleSuperAdmin),
		},
	}, nil
}

// AdminLogin verifies the password before the active flag, so a deactivated
// account is only revealed to callers holding the correct password.
func (s *AuthService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AuthResponse, error) {
	admin, err := s.admins.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.passwords.Verify(req.Password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if !s.passwords.Verify(req.Password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(auth.Claims{
		AccountID: admin.ID.String(),
		Role:      auth.RoleAdmin,
		Email:     admin.Email,
		Username:  admin.Username,
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserResponse{
			ID:       admin.ID,
			Email:    admin.Email,
			Username: admin.Username,
			Phone:    admin.Phone,
			Role:     string(auth.RoleAdmin),
		},
	}, nil
}

// VerifyAccount checks that the account behind verified claims still exists
// and, for admins, is still active.
func (s *AuthService) VerifyAccount(ctx context.Context, claims *auth.Claims) error {
	id, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return ErrAccountNotFound
	}

	switch claims.Role {
	case auth.RoleSuperAdmin:
		if _, err := s.superAdmins.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to load super admin: %w", err)
		}
	case auth.RoleAdmin:
		admin, err := s.admins.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to load admin: %w", err)
		}
		if !admin.IsActive {
			return ErrAccountDeactivated
		}
	default:
		return ErrAccountNotFound
	}
	return nil
}
