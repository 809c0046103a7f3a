package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettledLoan is a row of the settled (liquidated) loans feed.
// The auto-increment ID drives keyset pagination of the scan.
type SettledLoan struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	Document     string     `gorm:"index"`
	MovementDate *time.Time `gorm:"index"`
	Fund         string     `gorm:"index"`
	MovementType string     `gorm:"index"`
	Debtor       string
	PaidValue    decimal.Decimal `gorm:"type:numeric(20,2)"`
	NominalValue decimal.Decimal `gorm:"type:numeric(20,2)"`
	AcquiredAt   *time.Time
	DueDate      *time.Time
	CreatedAt    time.Time
}

func (SettledLoan) TableName() string {
	return "settled_loans"
}
