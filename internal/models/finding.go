package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Finding is a persisted inconsistency. Rows sharing Category and PartitionDate
// form one partition. Seq identifies the finding within its run and partition,
// so re-flushing a batch of the same run is idempotent while repeated
// settlements of one document are all kept.
type Finding struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	RunID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_finding_key"`
	Category      string    `gorm:"size:64;uniqueIndex:idx_finding_key;index:idx_finding_partition"`
	PartitionDate string    `gorm:"size:8;uniqueIndex:idx_finding_key;index:idx_finding_partition"`
	Seq           int       `gorm:"uniqueIndex:idx_finding_key"`
	Kind          string    `gorm:"size:32;index"`
	Document      string    `gorm:"index"`
	MovementDate  time.Time
	Details       datatypes.JSON
	CreatedAt     time.Time
}
