package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLoan is a row of the outstanding (stock) loans feed.
type StockLoan struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Document      string    `gorm:"index"`
	Fund          string    `gorm:"index"`
	ReferenceDate *time.Time
	NominalValue  decimal.Decimal `gorm:"type:numeric(20,2)"`
	PresentValue  decimal.Decimal `gorm:"type:numeric(20,2)"`
	CreatedAt     time.Time
}

func (StockLoan) TableName() string {
	return "current_loans"
}
