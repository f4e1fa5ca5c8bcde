package dto

import "github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required,min=10"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Phone   *string `json:"phone" validate:"omitempty,min=10"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

// CustomerDetail is a customer with its order history. Orders is always
// rendered, as an empty array when the customer has none.
type CustomerDetail struct {
	*models.Customer
	Orders []models.Order `json:"orders"`
}

func NewCustomerDetail(c *models.Customer) CustomerDetail {
	orders := c.Orders
	if orders == nil {
		orders = []models.Order{}
	}
	return CustomerDetail{Customer: c, Orders: orders}
}
