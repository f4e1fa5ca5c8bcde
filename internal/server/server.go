package server

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Options tweak the assembled app; the zero value is the production setup.
type Options struct {
	// DisableAccessLog silences the per-request log line.
	DisableAccessLog bool
}

// New wires repositories, services, handlers and middleware into a Fiber app.
func New(cfg *config.Config, db *gorm.DB, opts Options) (*fiber.App, error) {
	passwords := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	superAdminRepo := repository.NewSuperAdminRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService, err := services.NewAuthService(superAdminRepo, adminRepo, tokens, passwords)
	if err != nil {
		return nil, err
	}
	adminService := services.NewAdminService(adminRepo, passwords)
	customerService := services.NewCustomerService(customerRepo, orderRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo)

	errs := handlers.NewErrorResponder(cfg.IsDevelopment())

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler(errs),
	})

	if cfg.SentryDSN != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	if !opts.DisableAccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, tokens, authService, routes.Handlers{
		SuperAdmin: handlers.NewSuperAdminHandler(authService, adminService, errs),
		Admin:      handlers.NewAdminHandler(authService, adminService, errs),
		Customer:   handlers.NewCustomerHandler(customerService, errs),
		Order:      handlers.NewOrderHandler(orderService, errs),
		Health:     handlers.NewHealthHandler(db),
	})

	return app, nil
}

// errorHandler renders framework errors (unknown routes, body limits,
// recovered panics) in the same envelope as handler errors.
func errorHandler(errs *handlers.ErrorResponder) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		return errs.Internal(c, err)
	}
}
