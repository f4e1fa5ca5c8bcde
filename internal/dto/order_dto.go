package dto

import "github.com/shopspring/decimal"

// Money is a request amount. Input that is not a number is kept in Raw
// instead of failing the whole decode, so validation can report it
// alongside every other violation.
type Money struct {
	decimal.Decimal
	Raw string
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		m.Decimal, m.Raw = decimal.Zero, string(b)
		return nil
	}
	m.Decimal, m.Raw = d, ""
	return nil
}

// Valid reports whether the input parsed as a number.
func (m Money) Valid() bool {
	return m.Raw == ""
}

func NewMoney(s string) *Money {
	return &Money{Decimal: decimal.RequireFromString(s)}
}

type MeasurementsInput struct {
	Chest        *float64 `json:"chest" validate:"omitempty,gte=0"`
	Waist        *float64 `json:"waist" validate:"omitempty,gte=0"`
	Hip          *float64 `json:"hip" validate:"omitempty,gte=0"`
	Shoulder     *float64 `json:"shoulder" validate:"omitempty,gte=0"`
	SleeveLength *float64 `json:"sleeveLength" validate:"omitempty,gte=0"`
	ShirtLength  *float64 `json:"shirtLength" validate:"omitempty,gte=0"`
	PantLength   *float64 `json:"pantLength" validate:"omitempty,gte=0"`
	Inseam       *float64 `json:"inseam" validate:"omitempty,gte=0"`
	Thigh        *float64 `json:"thigh" validate:"omitempty,gte=0"`
}

// CreateOrderRequest has no balance field; balance is always derived.
type CreateOrderRequest struct {
	CustomerID    string             `json:"customerId" validate:"required,uuid"`
	GarmentType   string             `json:"garmentType" validate:"required"`
	Price         *Money             `json:"price" validate:"required,money,gt=0,lt=100000000"`
	OrderDate     *string            `json:"orderDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DeliveryDate  *string            `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status        *string            `json:"status" validate:"omitempty,oneof='Open' 'In Progress' 'Delivered'"`
	FabricDetails *string            `json:"fabricDetails"`
	Measurements  *MeasurementsInput `json:"measurements"`
	AdvancePaid   *Money             `json:"advancePaid" validate:"omitempty,money,gte=0,lt=100000000"`
	Notes         *string            `json:"notes"`
}

// UpdateOrderRequest cannot move an order to another customer.
type UpdateOrderRequest struct {
	GarmentType   *string            `json:"garmentType" validate:"omitempty,min=1"`
	Price         *Money             `json:"price" validate:"omitempty,money,gt=0,lt=100000000"`
	OrderDate     *string            `json:"orderDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DeliveryDate  *string            `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status        *string            `json:"status" validate:"omitempty,oneof='Open' 'In Progress' 'Delivered'"`
	FabricDetails *string            `json:"fabricDetails"`
	Measurements  *MeasurementsInput `json:"measurements"`
	AdvancePaid   *Money             `json:"advancePaid" validate:"omitempty,money,gte=0,lt=100000000"`
	Notes         *string            `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Open' 'In Progress' 'Delivered'"`
}

type ListOrdersQuery struct {
	Status string `query:"status" validate:"omitempty,oneof='Open' 'In Progress' 'Delivered'"`
}
