package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

// ExistsByEmailOrUsername reports whether another admin already holds either value.
func (r *AdminRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).
		Where("email = ? OR username = ?", email, username).
		Count(&n).Error
	return n > 0, translate(err)
}

// EmailTaken reports whether an admin other than exclude uses email.
func (r *AdminRepository) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).
		Where("email = ? AND id <> ?", email, exclude).
		Count(&n).Error
	return n > 0, translate(err)
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.WithContext(ctx).Scopes(newestFirst("created_at")).Find(&admins).Error
	return admins, translate(err)
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return translate(r.db.WithContext(ctx).Create(admin).Error)
}

func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	return updateExisting(r.db.WithContext(ctx), admin)
}

// ToggleActive flips is_active in a single statement and returns the new row.
func (r *AdminRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	res := r.db.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Admin{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
