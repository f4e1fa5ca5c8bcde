package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_UniqueConstraintsSurface(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewAdminRepository(db)
	ctx := context.Background()
	testutil.CreateAdmin(t, db, "shop1", "secret123", true)

	err := repo.Create(ctx, &models.Admin{
		Email:        "other@shop.test",
		Username:     "shop1",
		PasswordHash: "x",
		IsActive:     true,
		CreatedByID:  uuid.New(),
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestAdminRepository_ToggleActive(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewAdminRepository(db)
	ctx := context.Background()
	admin := testutil.CreateAdmin(t, db, "shop1", "secret123", true)

	got, err := repo.ToggleActive(ctx, admin.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = repo.ToggleActive(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	_, err = repo.ToggleActive(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdminRepository_EmailTakenExcludesSelf(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewAdminRepository(db)
	ctx := context.Background()
	a := testutil.CreateAdmin(t, db, "shop1", "secret123", true)
	b := testutil.CreateAdmin(t, db, "shop2", "secret123", true)

	taken, err := repo.EmailTaken(ctx, a.Email, a.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.EmailTaken(ctx, a.Email, b.ID)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestAdminRepository_ListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewAdminRepository(db)
	first := testutil.CreateAdmin(t, db, "shop1", "secret123", true)
	second := testutil.CreateAdmin(t, db, "shop2", "secret123", true)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	admins, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, second.ID, admins[0].ID)
	assert.Equal(t, first.ID, admins[1].ID)
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewCustomerRepository(db)

	err := repo.Update(context.Background(), &models.Customer{ID: uuid.New(), Name: "Ghost", Phone: "9999999999"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var n int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&n).Error)
	assert.Zero(t, n, "update must not insert")
}

func TestCustomerRepository_DuplicatePhone(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewCustomerRepository(db)
	testutil.CreateCustomer(t, db, "Asha", "9876543210")

	err := repo.Create(context.Background(), &models.Customer{Name: "Other", Phone: "9876543210", CreatedByID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestCustomerRepository_DeleteWithOrdersIsReference(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewCustomerRepository(db)
	c := testutil.CreateCustomer(t, db, "Asha", "9876543210")
	testutil.CreateOrder(t, db, c.ID, "1000", "0", time.Now())

	err := repo.Delete(context.Background(), c.ID)
	assert.ErrorIs(t, err, repository.ErrReference)

	err = repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCustomerRepository_OrdersNewestFirst(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewCustomerRepository(db)
	c := testutil.CreateCustomer(t, db, "Asha", "9876543210")
	older := testutil.CreateOrder(t, db, c.ID, "100", "0", time.Now().Add(-48*time.Hour))
	newer := testutil.CreateOrder(t, db, c.ID, "200", "0", time.Now())

	got, err := repo.FindByPhoneWithOrders(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Len(t, got.Orders, 2)
	assert.Equal(t, newer.ID, got.Orders[0].ID)
	assert.Equal(t, older.ID, got.Orders[1].ID)

	_, err = repo.FindByPhoneWithOrders(context.Background(), "0000000000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderRepository_CreateForMissingCustomer(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewOrderRepository(db)

	err := repo.Create(context.Background(), &models.Order{
		CustomerID:  uuid.New(),
		OrderDate:   time.Now(),
		GarmentType: "Shirt",
		Price:       decimal.NewFromInt(100),
		CreatedByID: uuid.New(),
	})
	assert.ErrorIs(t, err, repository.ErrReference)
}

func TestOrderRepository_ListFiltersByStatus(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, db, "Asha", "9876543210")
	open := testutil.CreateOrder(t, db, c.ID, "100", "0", time.Now().Add(-time.Hour))
	done := testutil.CreateOrder(t, db, c.ID, "200", "50", time.Now())
	require.NoError(t, db.Model(done).Update("status", models.StatusDelivered).Error)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, done.ID, all[0].ID)
	require.NotNil(t, all[0].Customer)
	assert.Equal(t, "Asha", all[0].Customer.Name)

	delivered, err := repo.List(ctx, string(models.StatusDelivered))
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, done.ID, delivered[0].ID)

	opened, err := repo.List(ctx, string(models.StatusOpen))
	require.NoError(t, err)
	require.Len(t, opened, 1)
	assert.Equal(t, open.ID, opened[0].ID)

	n, err := repo.CountByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestOrderRepository_UpdateKeepsBalanceDerived(t *testing.T) {
	db := testutil.NewDB(t, testutil.Config(t))
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, db, "Asha", "9876543210")
	o := testutil.CreateOrder(t, db, c.ID, "1000", "300", time.Now())

	loaded, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Balance.Equal(decimal.NewFromInt(700)))

	loaded.AdvancePaid = decimal.NewFromInt(500)
	loaded.Balance = decimal.NewFromInt(1)
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.NewFromInt(500)), reloaded.Balance.String())
}
