package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	SuperAdmin *handlers.SuperAdminHandler
	Admin      *handlers.AdminHandler
	Customer   *handlers.CustomerHandler
	Order      *handlers.OrderHandler
	Health     *handlers.HealthHandler
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	tokens *auth.TokenService,
	accounts middleware.AccountVerifier,
	h Handlers,
) {
	app.Get("/", h.Health.Info)

	api := app.Group("/api")

	// General API rate limiter per IP
	if cfg.RateLimitPerMinute > 0 {
		api.Use(perMinuteLimiter(cfg.RateLimitPerMinute))
	}

	api.Get("/health", h.Health.Check)

	// Logins are the only entity endpoints outside the gate.
	var loginLimit fiber.Handler
	if cfg.LoginRateLimitPerMinute > 0 {
		loginLimit = perMinuteLimiter(cfg.LoginRateLimitPerMinute)
	}
	login := func(next fiber.Handler) []fiber.Handler {
		if loginLimit == nil {
			return []fiber.Handler{next}
		}
		return []fiber.Handler{loginLimit, next}
	}

	superOnly := middleware.Gate(tokens, accounts, middleware.SuperAdminOnly)
	adminOnly := middleware.Gate(tokens, accounts, middleware.AdminOnly)
	anyStaff := middleware.Gate(tokens, accounts, middleware.AnyStaff)

	// Super admin
	api.Post("/superadmin/login", login(h.SuperAdmin.Login)...)
	admins := api.Group("/superadmin/admins", superOnly)
	admins.Post("/", h.SuperAdmin.CreateAdmin)
	admins.Get("/", h.SuperAdmin.ListAdmins)
	admins.Patch("/:id/toggle-status", h.SuperAdmin.ToggleAdminStatus)
	admins.Delete("/:id", h.SuperAdmin.DeleteAdmin)

	// Admin self-service
	api.Post("/admin/login", login(h.Admin.Login)...)
	api.Get("/admin/profile", adminOnly, h.Admin.GetProfile)
	api.Put("/admin/profile", adminOnly, h.Admin.UpdateProfile)

	// Customers
	customers := api.Group("/customers", anyStaff)
	customers.Post("/", h.Customer.Create)
	customers.Get("/", h.Customer.List)
	customers.Get("/search/:phone", h.Customer.SearchByPhone)
	customers.Get("/:id", h.Customer.Get)
	customers.Put("/:id", h.Customer.Update)
	customers.Delete("/:id", h.Customer.Delete)

	// Orders
	orders := api.Group("/orders", anyStaff)
	orders.Post("/", h.Order.Create)
	orders.Get("/", h.Order.List)
	orders.Get("/customer/:customerId", h.Order.ListByCustomer)
	orders.Get("/:id", h.Order.Get)
	orders.Put("/:id", h.Order.Update)
	orders.Delete("/:id", h.Order.Delete)
	orders.Patch("/:id/status", h.Order.UpdateStatus)
}

func perMinuteLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
