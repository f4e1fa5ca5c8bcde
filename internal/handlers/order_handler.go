package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService *services.OrderService
	errs         *ErrorResponder
}

func NewOrderHandler(orderService *services.OrderService, errs *ErrorResponder) *OrderHandler {
	return &OrderHandler{orderService: orderService, errs: errs}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	creatorID, err := actorID(c)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	var req dto.CreateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	order, err := h.orderService.Create(c.UserContext(), creatorID, &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   order,
	})
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	q := dto.ListOrdersQuery{Status: c.Query("status")}
	if err := validation.Struct(&q); err != nil {
		return h.errs.Respond(c, err)
	}

	orders, err := h.orderService.List(c.UserContext(), q.Status)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := parseID(c, "customerId")
	if err != nil {
		return h.errs.Respond(c, err)
	}

	orders, err := h.orderService.ListByCustomer(c.UserContext(), customerID)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}

	order, err := h.orderService.Get(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"order": order})
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}
	var req dto.UpdateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	order, err := h.orderService.Update(c.UserContext(), id, &req)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Order updated successfully",
		"order":   order,
	})
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}
	var req dto.UpdateOrderStatusRequest
	if err := parseBody(c, &req); err != nil {
		return h.errs.Respond(c, err)
	}

	order, err := h.orderService.UpdateStatus(c.UserContext(), id, models.OrderStatus(req.Status))
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
		"order":   order,
	})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.errs.Respond(c, err)
	}

	if err := h.orderService.Delete(c.UserContext(), id); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
