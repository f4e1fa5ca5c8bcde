package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"not null;size:255" json:"name"`
	Phone   string    `gorm:"not null;size:32;uniqueIndex" json:"phone"`
	Email   *string   `gorm:"size:255" json:"email"`
	Address *string   `gorm:"type:text" json:"address"`
	// CreatedByID holds the id of the SuperAdmin or Admin that created the
	// record. It has no storage foreign key so admin deletion never cascades.
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"createdById"`
	Orders      []Order   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"orders,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
