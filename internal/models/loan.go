package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan is a contract row of the internal ledger.
type Loan struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CCBNumber             string          `gorm:"column:ccb_number;index"`
	ContractStatus        string          `gorm:"column:contract_status;index"`
	ContractOriginalTotal decimal.Decimal `gorm:"type:numeric(20,2)"`
	PaidTotalValue        decimal.Decimal `gorm:"type:numeric(20,2)"`
	ContractFullyPaidDate *time.Time
	CreatedAt             time.Time
}

func (Loan) TableName() string {
	return "loans"
}
