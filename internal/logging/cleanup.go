package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup deletes system logs older than retention once a day until done is closed.
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				PurgeBefore(db, time.Now().Add(-retention))
			case <-done:
				return
			}
		}
	}()
}

// PurgeBefore removes system logs recorded before cutoff.
func PurgeBefore(db *gorm.DB, cutoff time.Time) int64 {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return 0
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
	return result.RowsAffected
}
