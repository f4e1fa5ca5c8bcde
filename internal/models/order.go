package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func init() {
	// Money leaves the API as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type OrderStatus string

const (
	StatusOpen       OrderStatus = "Open"
	StatusInProgress OrderStatus = "In Progress"
	StatusDelivered  OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDelivered:
		return true
	}
	return false
}

// Measurements are body measurements taken for a garment. Every field is optional.
type Measurements struct {
	Chest        *float64 `json:"chest,omitempty"`
	Waist        *float64 `json:"waist,omitempty"`
	Hip          *float64 `json:"hip,omitempty"`
	Shoulder     *float64 `json:"shoulder,omitempty"`
	SleeveLength *float64 `json:"sleeveLength,omitempty"`
	ShirtLength  *float64 `json:"shirtLength,omitempty"`
	PantLength   *float64 `json:"pantLength,omitempty"`
	Inseam       *float64 `json:"inseam,omitempty"`
	Thigh        *float64 `json:"thigh,omitempty"`
}

type Order struct {
	ID            uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID    uuid.UUID                         `gorm:"type:uuid;not null;index" json:"customerId"`
	Customer      *Customer                         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderDate     time.Time                         `gorm:"not null;index" json:"orderDate"`
	DeliveryDate  *time.Time                        `json:"deliveryDate"`
	Status        OrderStatus                       `gorm:"size:20;not null;default:'Open';index" json:"status"`
	GarmentType   string                            `gorm:"not null;size:100" json:"garmentType"`
	FabricDetails *string                           `gorm:"type:text" json:"fabricDetails"`
	Measurements  *datatypes.JSONType[Measurements] `json:"measurements"`
	Price         decimal.Decimal                   `gorm:"type:decimal(10,2);not null" json:"price"`
	AdvancePaid   decimal.Decimal                   `gorm:"type:decimal(10,2);not null" json:"advancePaid"`
	Balance       decimal.Decimal                   `gorm:"type:decimal(10,2);not null" json:"balance"`
	Notes         *string                           `gorm:"type:text" json:"notes"`
	CreatedByID   uuid.UUID                         `gorm:"type:uuid;not null;index" json:"createdById"`
	CreatedAt     time.Time                         `json:"createdAt"`
	UpdatedAt     time.Time                         `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = StatusOpen
	}
	return nil
}

// BeforeSave keeps Balance derived on every write path.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.RecomputeBalance()
	return nil
}

func (o *Order) RecomputeBalance() {
	o.Balance = o.Price.Sub(o.AdvancePaid)
}

// SetMeasurements replaces the stored measurements; nil clears them.
func (o *Order) SetMeasurements(m *Measurements) {
	if m == nil {
		o.Measurements = nil
		return
	}
	v := datatypes.NewJSONType(*m)
	o.Measurements = &v
}
