package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SuperAdminHandler struct {
	authService  *services.AuthService
	adminService *services.AdminService
	errs         *ErrorResponder
}

func NewSuperAdminHandler(authService *services.AuthService, adminService *services.AdminService, errs *ErrorResponder) *SuperAdminHandler {
	return &SuperAdminHandler{authService: authService, adminService: adminService, errs: errs}
}

func (h *SuperAdminHandler) Login(c *fiber.Ctx) error {
	var req dto.SuperAdminLoginRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	resp, err := h.authService.SuperAdminLogin(c.UserContext(), &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(resp)
}

func (h *SuperAdminHandler) CreateAdmin(c *fiber.Ctx) error {
	creatorID, err := actorID(c)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	var req dto.CreateAdminRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	admin, err := h.adminService.Create(c.UserContext(), creatorID, &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}

func (h *SuperAdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.adminService.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"admins": admins})
}

func (h *SuperAdminHandler) ToggleAdminStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}

	admin, err := h.adminService.ToggleStatus(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Admin status updated successfully",
		"admin":   admin,
	})
}

func (h *SuperAdminHandler) DeleteAdmin(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}

	if err := h.adminService.Delete(c.UserContext(), id); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Admin deleted successfully"})
}
