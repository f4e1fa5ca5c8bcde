package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/testutil"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *dto.Money {
	return dto.NewMoney(s)
}

func TestOrderService_BalanceFollowsPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")
	actor := uuid.New()

	order, err := f.orders.Create(ctx, actor, &dto.CreateOrderRequest{
		CustomerID:  c.ID.String(),
		GarmentType: "Shirt",
		Price:       dec("1000"),
		AdvancePaid: dec("300"),
	})
	require.NoError(t, err)
	assert.True(t, order.Balance.Equal(decimal.NewFromInt(700)), order.Balance.String())
	assert.Equal(t, models.StatusOpen, order.Status)
	assert.Equal(t, actor, order.CreatedByID)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Asha", order.Customer.Name)

	order, err = f.orders.Update(ctx, order.ID, &dto.UpdateOrderRequest{AdvancePaid: dec("500")})
	require.NoError(t, err)
	assert.True(t, order.Balance.Equal(decimal.NewFromInt(500)), order.Balance.String())
	assert.True(t, order.Price.Equal(decimal.NewFromInt(1000)))

	order, err = f.orders.Update(ctx, order.ID, &dto.UpdateOrderRequest{Price: dec("1200.50")})
	require.NoError(t, err)
	assert.True(t, order.Balance.Equal(decimal.RequireFromString("700.50")), order.Balance.String())
}

func TestOrderService_CreateDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")

	before := time.Now().Add(-time.Second)
	order, err := f.orders.Create(ctx, uuid.New(), &dto.CreateOrderRequest{
		CustomerID:   c.ID.String(),
		GarmentType:  "Kurta",
		Price:        dec("800"),
		Measurements: &dto.MeasurementsInput{Chest: ptr(40.0), Waist: ptr(34.0)},
	})
	require.NoError(t, err)
	assert.True(t, order.AdvancePaid.IsZero())
	assert.True(t, order.Balance.Equal(decimal.NewFromInt(800)))
	assert.True(t, order.OrderDate.After(before))
	assert.Nil(t, order.DeliveryDate)
	require.NotNil(t, order.Measurements)
	m := order.Measurements.Data()
	require.NotNil(t, m.Chest)
	assert.Equal(t, 40.0, *m.Chest)
	assert.Nil(t, m.Hip)
}

func TestOrderService_CreateWithDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")

	order, err := f.orders.Create(ctx, uuid.New(), &dto.CreateOrderRequest{
		CustomerID:   c.ID.String(),
		GarmentType:  "Suit",
		Price:        dec("5000"),
		OrderDate:    ptr("2024-03-01T10:00:00Z"),
		DeliveryDate: ptr("2024-03-15T10:00:00+05:30"),
		Status:       ptr("In Progress"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, order.Status)
	assert.True(t, order.OrderDate.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NotNil(t, order.DeliveryDate)
	assert.True(t, order.DeliveryDate.Equal(time.Date(2024, 3, 15, 4, 30, 0, 0, time.UTC)))
}

func TestOrderService_CreateForUnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Create(context.Background(), uuid.New(), &dto.CreateOrderRequest{
		CustomerID: uuid.NewString(), GarmentType: "Shirt", Price: dec("100"),
	})
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)

	_, err = f.orders.Create(context.Background(), uuid.New(), &dto.CreateOrderRequest{
		CustomerID: "not-a-uuid", GarmentType: "Shirt", Price: dec("100"),
	})
	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
}

func TestOrderService_StatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")
	o := testutil.CreateOrder(t, f.db, c.ID, "1000", "200", time.Now())

	for _, status := range []models.OrderStatus{models.StatusDelivered, models.StatusOpen, models.StatusInProgress} {
		got, err := f.orders.UpdateStatus(ctx, o.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(800)))
	}

	_, err := f.orders.UpdateStatus(ctx, uuid.New(), models.StatusOpen)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestOrderService_ListAndFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")
	b := testutil.CreateCustomer(t, f.db, "Ravi", "9123456780")
	testutil.CreateOrder(t, f.db, a.ID, "100", "0", time.Now().Add(-time.Hour))
	o2 := testutil.CreateOrder(t, f.db, b.ID, "200", "0", time.Now())
	_, err := f.orders.UpdateStatus(ctx, o2.ID, models.StatusDelivered)
	require.NoError(t, err)

	all, err := f.orders.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	delivered, err := f.orders.List(ctx, string(models.StatusDelivered))
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, o2.ID, delivered[0].ID)

	byCustomer, err := f.orders.ListByCustomer(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	_, err = f.orders.ListByCustomer(ctx, uuid.New())
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
}

func TestOrderService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := testutil.CreateCustomer(t, f.db, "Asha", "9876543210")
	o := testutil.CreateOrder(t, f.db, c.ID, "100", "0", time.Now())

	require.NoError(t, f.orders.Delete(ctx, o.ID))
	_, err := f.orders.Get(ctx, o.ID)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
	assert.ErrorIs(t, f.orders.Delete(ctx, o.ID), services.ErrOrderNotFound)
}
