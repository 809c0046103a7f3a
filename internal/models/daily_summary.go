package models

import "github.com/google/uuid"

// DailySummary is one (date, kind) counter of a completed run.
// Position keeps the first-encounter order of kinds within the day.
type DailySummary struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement"`
	RunID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_daily_summary_key"`
	Date     string    `gorm:"size:8;uniqueIndex:idx_daily_summary_key"`
	Kind     string    `gorm:"size:32;uniqueIndex:idx_daily_summary_key"`
	Position int
	Count    int
}

// All returns every model the service migrates.
func All() []interface{} {
	return []interface{}{
		&Loan{},
		&SettledLoan{},
		&StockLoan{},
		&Finding{},
		&ReconciliationRun{},
		&DailySummary{},
	}
}
