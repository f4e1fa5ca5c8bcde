package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

// FindByIDWithOrders loads the customer together with its orders.
func (r *CustomerRepository) FindByIDWithOrders(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Scopes(withOrders).First(&customer, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *CustomerRepository) FindByPhoneWithOrders(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Scopes(withOrders).Where("phone = ?", phone).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

// PhoneTaken reports whether a customer other than exclude uses phone.
func (r *CustomerRepository) PhoneTaken(ctx context.Context, phone string, exclude uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("phone = ? AND id <> ?", phone, exclude).
		Count(&n).Error
	return n > 0, translate(err)
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).Scopes(newestFirst("created_at")).Find(&customers).Error
	return customers, translate(err)
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return translate(r.db.WithContext(ctx).Omit("Orders").Create(customer).Error)
}

func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return updateExisting(r.db.WithContext(ctx), customer, "Orders")
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
