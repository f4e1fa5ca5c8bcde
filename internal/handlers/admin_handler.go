package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	authService  *services.AuthService
	adminService *services.AdminService
	errs         *ErrorResponder
}

func NewAdminHandler(authService *services.AuthService, adminService *services.AdminService, errs *ErrorResponder) *AdminHandler {
	return &AdminHandler{authService: authService, adminService: adminService, errs: errs}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	resp, err := h.authService.AdminLogin(c.UserContext(), &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) GetProfile(c *fiber.Ctx) error {
	id, err := actorID(c)
	if err != nil {
		return h.errs.Respond(c, err)
	}

	admin, err := h.adminService.GetProfile(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"admin": admin})
}

func (h *AdminHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := actorID(c)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	admin, err := h.adminService.UpdateProfile(c.UserContext(), id, &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"admin":   admin,
	})
}
