package reconciliation

import (
	"context"
	"strings"

	"loan-reconciliation-backend/internal/domain"
)

// Engine classifies settled records against the ledger and the stock feed.
type Engine struct {
	paidStatus string
	ledger     *LookupCache[*domain.LedgerRecord]
	stock      *LookupCache[*domain.StockRecord]
}

// NewEngine builds an engine with its own pair of lookup caches.
func NewEngine(ledger LedgerStore, stock StockStore, paidStatus string, cacheSize int) (*Engine, error) {
	paidStatus = strings.TrimSpace(paidStatus)
	if paidStatus == "" {
		return nil, domain.ErrMissingPaidStatus
	}

	ledgerCache, err := NewLookupCache("ledger", cacheSize, func(ctx context.Context, doc string) (*domain.LedgerRecord, bool, error) {
		rec, err := ledger.FindLedger(ctx, doc)
		return rec, rec != nil, err
	})
	if err != nil {
		return nil, err
	}
	stockCache, err := NewLookupCache("stock", cacheSize, func(ctx context.Context, doc string) (*domain.StockRecord, bool, error) {
		rec, err := stock.FindStock(ctx, doc)
		return rec, rec != nil, err
	})
	if err != nil {
		return nil, err
	}

	return &Engine{paidStatus: paidStatus, ledger: ledgerCache, stock: stockCache}, nil
}

// Reconcile returns the findings for one settled record: at most one of
// NotFound/StatusInconsistent, plus an independent StockConflict.
func (e *Engine) Reconcile(ctx context.Context, rec domain.SettledRecord) ([]domain.Finding, error) {
	var findings []domain.Finding

	ledger, found, err := e.ledger.Lookup(ctx, rec.Document)
	if err != nil {
		return nil, err
	}
	switch {
	case !found:
		findings = append(findings, domain.NewNotFound(rec))
	case strings.TrimSpace(ledger.Status) != e.paidStatus:
		findings = append(findings, domain.NewStatusInconsistent(rec, ledger.Status))
	}

	_, inStock, err := e.stock.Lookup(ctx, rec.Document)
	if err != nil {
		return nil, err
	}
	if inStock {
		findings = append(findings, domain.NewStockConflict(rec))
	}

	return findings, nil
}

// ClearCaches empties both lookup caches.
func (e *Engine) ClearCaches() {
	e.ledger.Clear()
	e.stock.Clear()
}

func (e *Engine) CacheStats() (ledger, stock CacheStats) {
	return e.ledger.Stats(), e.stock.Stats()
}
