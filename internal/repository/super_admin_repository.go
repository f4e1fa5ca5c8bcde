package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SuperAdminRepository struct {
	db *gorm.DB
}

func NewSuperAdminRepository(db *gorm.DB) *SuperAdminRepository {
	return &SuperAdminRepository{db: db}
}

func (r *SuperAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.SuperAdmin, error) {
	var sa models.SuperAdmin
	if err := r.db.WithContext(ctx).First(&sa, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sa, nil
}

func (r *SuperAdminRepository) FindByEmail(ctx context.Context, email string) (*models.SuperAdmin, error) {
	var sa models.SuperAdmin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sa).Error; err != nil {
		return nil, translate(err)
	}
	return &sa, nil
}

func (r *SuperAdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.SuperAdmin{}).Count(&n).Error
	return n, translate(err)
}

func (r *SuperAdminRepository) Create(ctx context.Context, sa *models.SuperAdmin) error {
	return translate(r.db.WithContext(ctx).Create(sa).Error)
}
