package reconciliation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/google/uuid"
)

var errConnReset = errors.New("connection reset by peer")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDay(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := mustDay(s)
	return &t
}

func settled(doc, date string) domain.SettledCandidate {
	return domain.SettledCandidate{Document: doc, MovementDate: dayPtr(date)}
}

func record(doc, date string) domain.SettledRecord {
	return domain.SettledRecord{Document: doc, MovementDate: mustDay(date)}
}

// sliceCursor replays candidates; when failAt > 0 it fails before that position.
type sliceCursor struct {
	rows   []domain.SettledCandidate
	pos    int
	failAt int
	err    error
	closed int
}

func (c *sliceCursor) Next(ctx context.Context) bool {
	if c.failAt > 0 && c.pos >= c.failAt {
		c.err = errConnReset
		return false
	}
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor) Candidate() domain.SettledCandidate { return c.rows[c.pos-1] }
func (c *sliceCursor) Err() error                         { return c.err }
func (c *sliceCursor) Close(ctx context.Context) error {
	c.closed++
	return nil
}

// memoryStore serves all three record sets from maps.
type memoryStore struct {
	ledger    map[string]string
	stock     map[string]bool
	cursor    *sliceCursor
	ledgerErr error
	openErr   error

	ledgerCalls int
	stockCalls  int
}

func newMemoryStore(rows ...domain.SettledCandidate) *memoryStore {
	return &memoryStore{
		ledger: map[string]string{},
		stock:  map[string]bool{},
		cursor: &sliceCursor{rows: rows},
	}
}

func (m *memoryStore) FindLedger(ctx context.Context, doc string) (*domain.LedgerRecord, error) {
	m.ledgerCalls++
	if m.ledgerErr != nil {
		return nil, m.ledgerErr
	}
	status, ok := m.ledger[doc]
	if !ok {
		return nil, nil
	}
	return &domain.LedgerRecord{Document: doc, Status: status}, nil
}

func (m *memoryStore) CountLedger(ctx context.Context) (int64, error) {
	return int64(len(m.ledger)), nil
}

func (m *memoryStore) FindStock(ctx context.Context, doc string) (*domain.StockRecord, error) {
	m.stockCalls++
	if !m.stock[doc] {
		return nil, nil
	}
	return &domain.StockRecord{Document: doc}, nil
}

func (m *memoryStore) CountStock(ctx context.Context) (int64, error) { return int64(len(m.stock)), nil }

func (m *memoryStore) OpenSettled(ctx context.Context, pageSize int) (reconciliation.SettledCursor, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return m.cursor, nil
}

func (m *memoryStore) CountSettled(ctx context.Context) (int64, error) {
	return int64(len(m.cursor.rows)), nil
}

// memoryPartitions keeps flushed findings per partition.
type memoryPartitions struct {
	partitions map[domain.Partition][]domain.Finding
	flushSizes []int
	err        error
}

func newMemoryPartitions() *memoryPartitions {
	return &memoryPartitions{partitions: map[domain.Partition][]domain.Finding{}}
}

func (p *memoryPartitions) AppendFindings(ctx context.Context, runID uuid.UUID, partition domain.Partition, findings []domain.Finding) error {
	if p.err != nil {
		return p.err
	}
	p.partitions[partition] = append(p.partitions[partition], findings...)
	p.flushSizes = append(p.flushSizes, len(findings))
	return nil
}
