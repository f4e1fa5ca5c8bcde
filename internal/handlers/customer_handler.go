package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customerService *services.CustomerService
	errs            *ErrorResponder
}

func NewCustomerHandler(customerService *services.CustomerService, errs *ErrorResponder) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, errs: errs}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	creatorID, err := actorID(c)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	var req dto.CreateCustomerRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	customer, err := h.customerService.Create(c.UserContext(), creatorID, &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.customerService.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"customers": customers})
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}

	customer, err := h.customerService.Get(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"customer": dto.NewCustomerDetail(customer)})
}

func (h *CustomerHandler) SearchByPhone(c *fiber.Ctx) error {
	customer, err := h.customerService.SearchByPhone(c.UserContext(), c.Params("phone"))
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"customer": dto.NewCustomerDetail(customer)})
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}
	var req dto.UpdateCustomerRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	customer, err := h.customerService.Update(c.UserContext(), id, &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}

	if err := h.customerService.Delete(c.UserContext(), id); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted successfully"})
}
