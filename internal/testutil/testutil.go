// Package testutil builds throwaway sqlite databases and fixtures for tests.
package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	JWTSecret     = "test-secret-key-for-tailor-backend"
	SuperEmail    = "superadmin@tailor.com"
	SuperUsername = "superadmin"
	SuperPassword = "SuperAdmin@123"
)

// Config returns a configuration backed by a unique in-memory sqlite database.
func Config(t *testing.T) *config.Config {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return &config.Config{
		AppEnv:             "test",
		DBDriver:           "sqlite",
		DBPath:             "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on",
		JWTSecret:          JWTSecret,
		JWTExpiry:          7 * 24 * time.Hour,
		BcryptCost:         bcrypt.MinCost,
		SuperAdminEmail:    SuperEmail,
		SuperAdminUsername: SuperUsername,
		SuperAdminPassword: SuperPassword,
		CORSOrigins:        "*",
		LogRetention:       30 * 24 * time.Hour,
	}
}

// NewDB opens and migrates the database described by cfg.
func NewDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func Hasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(bcrypt.MinCost)
}

func Tokens() *auth.TokenService {
	return auth.NewTokenService(JWTSecret, 7*24*time.Hour)
}

func CreateSuperAdmin(t *testing.T, db *gorm.DB) *models.SuperAdmin {
	t.Helper()
	hash, err := Hasher().Hash(SuperPassword)
	require.NoError(t, err)
	sa := &models.SuperAdmin{Email: SuperEmail, Username: SuperUsername, PasswordHash: hash}
	require.NoError(t, db.Create(sa).Error)
	return sa
}

func CreateAdmin(t *testing.T, db *gorm.DB, username, password string, active bool) *models.Admin {
	t.Helper()
	hash, err := Hasher().Hash(password)
	require.NoError(t, err)
	admin := &models.Admin{
		Email:        username + "@shop.test",
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
		CreatedByID:  uuid.New(),
	}
	require.NoError(t, db.Create(admin).Error)
	if !active {
		require.NoError(t, db.Model(admin).Update("is_active", false).Error)
		admin.IsActive = false
	}
	return admin
}

func CreateCustomer(t *testing.T, db *gorm.DB, name, phone string) *models.Customer {
	t.Helper()
	c := &models.Customer{Name: name, Phone: phone, CreatedByID: uuid.New()}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateOrder(t *testing.T, db *gorm.DB, customerID uuid.UUID, price, advance string, orderDate time.Time) *models.Order {
	t.Helper()
	o := &models.Order{
		CustomerID:  customerID,
		OrderDate:   orderDate,
		GarmentType: "Shirt",
		Price:       decimal.RequireFromString(price),
		AdvancePaid: decimal.RequireFromString(advance),
		CreatedByID: uuid.New(),
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

// Token issues a valid token for the given account.
func Token(t *testing.T, id uuid.UUID, role auth.Role) string {
	t.Helper()
	tok, err := Tokens().Issue(auth.Claims{AccountID: id.String(), Role: role})
	require.NoError(t, err)
	return tok
}
