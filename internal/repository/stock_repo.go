package repository

import (
	"context"
	"errors"
	"fmt"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/models"

	"gorm.io/gorm"
)

type StockLoanRepository struct {
	db *gorm.DB
}

func NewStockLoanRepository(db *gorm.DB) *StockLoanRepository {
	return &StockLoanRepository{db: db}
}

// FindStock returns (nil, nil) when the document is not in the stock feed.
func (r *StockLoanRepository) FindStock(ctx context.Context, document string) (*domain.StockRecord, error) {
	var row models.StockLoan
	err := r.db.WithContext(ctx).
		Select("document").
		Where("document = ?", document).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find stock loan %q: %w", domain.ErrStoreUnavailable, document, err)
	}
	return &domain.StockRecord{Document: row.Document}, nil
}

func (r *StockLoanRepository) CountStock(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.StockLoan{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count stock loans: %w", domain.ErrStoreUnavailable, err)
	}
	return n, nil
}
