package services_test

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/testutil"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Create(t *testing.T) {
	f := newFixture(t)
	sa := testutil.CreateSuperAdmin(t, f.db)
	ctx := context.Background()

	admin, err := f.admins.Create(ctx, sa.ID, &dto.CreateAdminRequest{
		Email: "shop1@tailor.com", Username: "shop1", Password: "secret123", Phone: ptr("9876543210"),
	})
	require.NoError(t, err)
	assert.True(t, admin.IsActive)
	assert.Equal(t, sa.ID, admin.CreatedByID)
	assert.NotEqual(t, "secret123", admin.PasswordHash)

	_, err = f.admins.Create(ctx, sa.ID, &dto.CreateAdminRequest{Email: "other@tailor.com", Username: "shop1", Password: "secret123"})
	assert.ErrorIs(t, err, services.ErrConflict)

	_, err = f.admins.Create(ctx, sa.ID, &dto.CreateAdminRequest{Email: "shop1@tailor.com", Username: "shop9", Password: "secret123"})
	assert.ErrorIs(t, err, services.ErrAdminExists)

	list, err := f.admins.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAdminService_ToggleTwiceRestores(t *testing.T) {
	f := newFixture(t)
	admin := testutil.CreateAdmin(t, f.db, "shop1", "secret123", true)
	ctx := context.Background()

	got, err := f.admins.ToggleStatus(ctx, admin.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = f.admins.ToggleStatus(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	_, err = f.admins.ToggleStatus(ctx, uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAdminService_DeleteKeepsCreatedRecords(t *testing.T) {
	f := newFixture(t)
	admin := testutil.CreateAdmin(t, f.db, "shop1", "secret123", true)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, admin.ID, &dto.CreateCustomerRequest{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	require.NoError(t, f.admins.Delete(ctx, admin.ID))
	assert.ErrorIs(t, f.admins.Delete(ctx, admin.ID), services.ErrAdminNotFound)

	got, err := f.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.CreatedByID)
}

func TestAdminService_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	admin := testutil.CreateAdmin(t, f.db, "shop1", "secret123", true)
	other := testutil.CreateAdmin(t, f.db, "shop2", "secret123", true)
	ctx := context.Background()

	got, err := f.admins.UpdateProfile(ctx, admin.ID, &dto.UpdateProfileRequest{Phone: ptr("5550001111")})
	require.NoError(t, err)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "5550001111", *got.Phone)
	assert.Equal(t, admin.Email, got.Email)

	_, err = f.admins.UpdateProfile(ctx, admin.ID, &dto.UpdateProfileRequest{Email: ptr(other.Email)})
	assert.ErrorIs(t, err, services.ErrEmailInUse)

	_, err = f.admins.UpdateProfile(ctx, admin.ID, &dto.UpdateProfileRequest{
		CurrentPassword: ptr("wrong-one"), NewPassword: ptr("newsecret1"),
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "currentPassword", verrs[0].Field)

	_, err = f.admins.UpdateProfile(ctx, admin.ID, &dto.UpdateProfileRequest{
		CurrentPassword: ptr("secret123"), NewPassword: ptr("newsecret1"),
	})
	require.NoError(t, err)

	_, err = f.auth.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "shop1", Password: "newsecret1"})
	assert.NoError(t, err)
	_, err = f.auth.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "shop1", Password: "secret123"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
