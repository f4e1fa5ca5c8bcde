package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SuperAdmin is the top-level operator that manages shop admins.
type SuperAdmin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Username     string    `gorm:"not null;size:100;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *SuperAdmin) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
