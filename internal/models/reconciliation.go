package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RunStatusProcessing = "processing"
	RunStatusCompleted  = "completed"
	RunStatusFailed     = "failed"
)

// ReconciliationRun tracks one reconcile-and-report execution.
type ReconciliationRun struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category       string    `gorm:"size:64;index"`
	Status         string    `gorm:"size:16;index"`
	ProcessedCount int
	SkippedCount   int
	FindingCount   int
	FlushCount     int
	Report         datatypes.JSON
	ReportText     string `gorm:"type:text"`
	ErrorMessage   string `gorm:"type:text"`
	StartedAt      time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
}
