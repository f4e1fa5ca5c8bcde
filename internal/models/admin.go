package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is a shop operator created by a SuperAdmin.
type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Username     string    `gorm:"not null;size:100;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Phone        *string   `gorm:"size:32" json:"phone"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedByID  uuid.UUID `gorm:"type:uuid;not null;index" json:"createdById"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
