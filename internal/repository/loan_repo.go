package repository

import (
	"context"
	"errors"
	"fmt"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/models"

	"gorm.io/gorm"
)

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// FindLedger fetches the ledger contract with the given CCB number.
// It returns (nil, nil) when there is none.
func (r *LoanRepository) FindLedger(ctx context.Context, document string) (*domain.LedgerRecord, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Select("ccb_number", "contract_status").
		Where("ccb_number = ?", document).
		Take(&loan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find loan %q: %w", domain.ErrStoreUnavailable, document, err)
	}
	return &domain.LedgerRecord{Document: loan.CCBNumber, Status: loan.ContractStatus}, nil
}

func (r *LoanRepository) CountLedger(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Loan{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count loans: %w", domain.ErrStoreUnavailable, err)
	}
	return n, nil
}
