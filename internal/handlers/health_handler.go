package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "ok"
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		status = "degraded"
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}

// Info describes the API roots.
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return c.JSON(dto.InfoResponse{
		Message: "Tailor Boutique Management API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"superAdmin": "/api/superadmin",
			"admin":      "/api/admin",
			"customers":  "/api/customers",
			"orders":     "/api/orders",
			"health":     "/api/health",
		},
	})
}
