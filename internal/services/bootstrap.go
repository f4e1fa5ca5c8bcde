package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
)

// BootstrapCredentials identify the SuperAdmin created on first start.
type BootstrapCredentials struct {
	Email    string
	Username string
	Password string
}

// EnsureSuperAdmin creates the initial SuperAdmin when none exists yet.
// It reports whether an account was created.
func EnsureSuperAdmin(
	ctx context.Context,
	repo *repository.SuperAdminRepository,
	passwords *auth.PasswordHasher,
	creds BootstrapCredentials,
) (bool, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count super admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := passwords.Hash(creds.Password)
	if err != nil {
		return false, err
	}

	sa := &models.SuperAdmin{
		Email:        creds.Email,
		Username:     creds.Username,
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, sa); err != nil {
		// Another instance won the race.
		if errors.Is(err, repository.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create super admin: %w", err)
	}

	slog.Warn("default super admin created; change its password immediately",
		"email", creds.Email, "username", creds.Username)
	return true, nil
}
