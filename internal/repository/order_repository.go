package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID loads the order with its customer.
func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Scopes(withCustomer).First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Scopes(withCustomer, WithStatus(status), newestFirst("order_date")).
		Find(&orders).Error
	return orders, translate(err)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Scopes(withCustomer, ForCustomer(customerID), newestFirst("order_date")).
		Find(&orders).Error
	return orders, translate(err)
}

func (r *OrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Scopes(ForCustomer(customerID)).Count(&n).Error
	return n, translate(err)
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return translate(r.db.WithContext(ctx).Omit("Customer").Create(order).Error)
}

func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	return updateExisting(r.db.WithContext(ctx), order, "Customer")
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
