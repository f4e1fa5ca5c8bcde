package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/validation"
	"github.com/google/uuid"
)

type AdminService struct {
	admins    *repository.AdminRepository
	passwords *auth.PasswordHasher
}

func NewAdminService(admins *repository.AdminRepository, passwords *auth.PasswordHasher) *AdminService {
	return &AdminService{admins: admins, passwords: passwords}
}

func (s *AdminService) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateAdminRequest) (*models.Admin, error) {
	taken, err := s.admins.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin uniqueness: %w", err)
	}
	if taken {
		return nil, ErrAdminExists
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Phone:        req.Phone,
		IsActive:     true,
		CreatedByID:  creatorID,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	slog.Info("admin created", "admin_id", admin.ID, "actor_id", creatorID)
	return admin, nil
}

func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

func (s *AdminService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	admin, err := s.admins.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to toggle admin status: %w", err)
	}
	slog.Info("admin status toggled", "admin_id", admin.ID, "is_active", admin.IsActive)
	return admin, nil
}

// Delete removes the admin unconditionally. Customers and orders it created
// keep their createdById.
func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.admins.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	slog.Info("admin deleted", "admin_id", id)
	return nil
}

func (s *AdminService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	return admin, nil
}

func (s *AdminService) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*models.Admin, error) {
	admin, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != admin.Email {
		taken, err := s.admins.EmailTaken(ctx, *req.Email, admin.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			return nil, ErrEmailInUse
		}
		admin.Email = *req.Email
	}

	if req.Phone != nil {
		admin.Phone = req.Phone
	}

	if req.NewPassword != nil {
		if req.CurrentPassword == nil || !s.passwords.Verify(*req.CurrentPassword, admin.PasswordHash) {
			return nil, validation.Field("currentPassword", "is incorrect")
		}
		hash, err := s.passwords.Hash(*req.NewPassword)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.admins.Update(ctx, admin); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailInUse
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return admin, nil
}
