package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SystemLog stores structured error logs written by the logging package.
type SystemLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
	Level     string         `gorm:"size:10;not null;index" json:"level"`
	Message   string         `gorm:"type:text" json:"message"`
	RequestID string         `gorm:"size:64;index" json:"requestId"`
	ActorID   *string        `gorm:"size:36;index" json:"actorId"`
	Role      string         `gorm:"size:20" json:"role"`
	Method    string         `gorm:"size:10" json:"method"`
	Path      string         `gorm:"size:255" json:"path"`
	Error     string         `gorm:"type:text" json:"error"`
	LatencyMs int            `json:"latencyMs"`
	Extra     datatypes.JSON `json:"extra"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (l *SystemLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
