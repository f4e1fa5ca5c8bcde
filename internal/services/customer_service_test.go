package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCustomerService_DuplicatePhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	actor := uuid.New()

	_, err := f.customers.Create(ctx, actor, &dto.CreateCustomerRequest{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	_, err = f.customers.Create(ctx, actor, &dto.CreateCustomerRequest{Name: "Other", Phone: "9876543210"})
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.ErrorIs(t, err, services.ErrCustomerExists)
}

func TestCustomerService_UpdatePhoneConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")
	testutil.CreateCustomer(t, f.db, "Ravi", "9123456780")

	_, err := f.customers.Update(ctx, a.ID, &dto.UpdateCustomerRequest{Phone: ptr("9123456780")})
	assert.ErrorIs(t, err, services.ErrPhoneInUse)

	// Re-submitting its own phone is not a conflict.
	got, err := f.customers.Update(ctx, a.ID, &dto.UpdateCustomerRequest{Phone: ptr("9876543210"), Name: ptr("Asha K")})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", got.Name)

	_, err = f.customers.Update(ctx, uuid.New(), &dto.UpdateCustomerRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
}

func TestCustomerService_DeleteGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")
	o1 := testutil.CreateOrder(t, f.db, c.ID, "1000", "0", time.Now())
	o2 := testutil.CreateOrder(t, f.db, c.ID, "500", "0", time.Now())

	err := f.customers.Delete(ctx, c.ID)
	var dep *services.DependentsError
	require.True(t, errors.As(err, &dep))
	assert.Equal(t, int64(2), dep.Count)
	assert.ErrorIs(t, err, services.ErrConflict)

	// Customer and orders are untouched.
	got, err := f.customers.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, got.Orders, 2)

	require.NoError(t, f.orders.Delete(ctx, o1.ID))
	require.NoError(t, f.orders.Delete(ctx, o2.ID))
	require.NoError(t, f.customers.Delete(ctx, c.ID))

	_, err = f.customers.Get(ctx, c.ID)
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
	assert.ErrorIs(t, f.customers.Delete(ctx, c.ID), services.ErrNotFound)
}

func TestCustomerService_SearchByPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")
	testutil.CreateOrder(t, f.db, c.ID, "1000", "0", time.Now())

	got, err := f.customers.SearchByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Len(t, got.Orders, 1)

	_, err = f.customers.SearchByPhone(ctx, "987654321")
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
}

func TestCustomerService_DeleteRacingNewOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")

	// An order lands after the count but before the delete statement.
	const name = "test:order_before_customer_delete"
	require.NoError(t, f.db.Callback().Delete().After("gorm:begin_transaction").Before("gorm:delete").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table != "customers" {
			return
		}
		order := &models.Order{
			CustomerID:  c.ID,
			OrderDate:   time.Now(),
			GarmentType: "Shirt",
			Price:       decimal.NewFromInt(100),
			CreatedByID: uuid.New(),
		}
		if err := tx.Session(&gorm.Session{NewDB: true}).Omit("Customer").Create(order).Error; err != nil {
			_ = tx.AddError(err)
		}
	}))
	t.Cleanup(func() { _ = f.db.Callback().Delete().Remove(name) })

	err := f.customers.Delete(ctx, c.ID)
	var dep *services.DependentsError
	require.ErrorAs(t, err, &dep)
	assert.ErrorIs(t, err, services.ErrConflict)
}
