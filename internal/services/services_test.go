package services_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	auth      *services.AuthService
	admins    *services.AdminService
	customers *services.CustomerService
	orders    *services.OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t, testutil.Config(t))

	superAdminRepo := repository.NewSuperAdminRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService, err := services.NewAuthService(superAdminRepo, adminRepo, testutil.Tokens(), testutil.Hasher())
	require.NoError(t, err)

	return &fixture{
		db:        db,
		auth:      authService,
		admins:    services.NewAdminService(adminRepo, testutil.Hasher()),
		customers: services.NewCustomerService(customerRepo, orderRepo),
		orders:    services.NewOrderService(orderRepo, customerRepo),
	}
}

func ptr[T any](v T) *T { return &v }
