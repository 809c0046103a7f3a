package repository

import (
	"context"
	"fmt"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/models"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"gorm.io/gorm"
)

type SettledLoanRepository struct {
	db *gorm.DB
}

func NewSettledLoanRepository(db *gorm.DB) *SettledLoanRepository {
	return &SettledLoanRepository{db: db}
}

// OpenSettled returns a cursor that pages through settled_loans by primary
// key. Nothing is held open between pages.
func (r *SettledLoanRepository) OpenSettled(ctx context.Context, pageSize int) (reconciliation.SettledCursor, error) {
	if pageSize <= 0 {
		pageSize = 500
	}
	if err := r.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("%w: open settled feed: %w", domain.ErrStoreUnavailable, err)
	}
	return &settledCursor{db: r.db, pageSize: pageSize}, nil
}

func (r *SettledLoanRepository) CountSettled(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.SettledLoan{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count settled loans: %w", domain.ErrStoreUnavailable, err)
	}
	return n, nil
}

type settledCursor struct {
	db       *gorm.DB
	pageSize int

	page   []models.SettledLoan
	pos    int
	lastID uint64
	done   bool
	err    error
}

func (c *settledCursor) Next(ctx context.Context) bool {
	if c.err != nil {
		return false
	}
	if c.pos >= len(c.page) {
		if c.done || !c.fetch(ctx) {
			return false
		}
	}
	c.pos++
	return true
}

// fetch loads the page after lastID (keyset pagination).
func (c *settledCursor) fetch(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		c.err = err
		return false
	}
	var rows []models.SettledLoan
	err := c.db.WithContext(ctx).
		Select("id", "document", "movement_date").
		Where("id > ?", c.lastID).
		Order("id ASC").
		Limit(c.pageSize).
		Find(&rows).Error
	if err != nil {
		c.err = fmt.Errorf("fetch settled page after id %d: %w", c.lastID, err)
		return false
	}
	if len(rows) < c.pageSize {
		c.done = true
	}
	if len(rows) == 0 {
		return false
	}
	c.page = rows
	c.pos = 0
	c.lastID = rows[len(rows)-1].ID
	return true
}

func (c *settledCursor) Candidate() domain.SettledCandidate {
	row := c.page[c.pos-1]
	return domain.SettledCandidate{Document: row.Document, MovementDate: row.MovementDate}
}

func (c *settledCursor) Err() error {
	return c.err
}

func (c *settledCursor) Close(ctx context.Context) error {
	c.page = nil
	c.done = true
	return nil
}
