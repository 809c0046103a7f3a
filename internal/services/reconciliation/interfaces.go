package reconciliation

import (
	"context"

	"loan-reconciliation-backend/internal/domain"

	"github.com/google/uuid"
)

// LedgerStore looks up internal ledger contracts.
// FindLedger returns (nil, nil) when no contract carries the document key.
//
//go:generate mockgen -destination=mocks/mock_interfaces.go -source=interfaces.go
type LedgerStore interface {
	FindLedger(ctx context.Context, document string) (*domain.LedgerRecord, error)
	CountLedger(ctx context.Context) (int64, error)
}

// StockStore looks up loans in the outstanding stock feed.
type StockStore interface {
	FindStock(ctx context.Context, document string) (*domain.StockRecord, error)
	CountStock(ctx context.Context) (int64, error)
}

// SettledSource opens forward-only cursors over the settled feed.
type SettledSource interface {
	OpenSettled(ctx context.Context, pageSize int) (SettledCursor, error)
	CountSettled(ctx context.Context) (int64, error)
}

// SettledCursor follows the Next/Err/Close protocol of database cursors.
type SettledCursor interface {
	Next(ctx context.Context) bool
	Candidate() domain.SettledCandidate
	Err() error
	Close(ctx context.Context) error
}

// PartitionWriter persists flushed findings. Implementations append; the cost
// of a call is proportional to the number of findings passed in.
type PartitionWriter interface {
	AppendFindings(ctx context.Context, runID uuid.UUID, partition domain.Partition, findings []domain.Finding) error
}

// PartitionLocator is implemented by sinks that can say where a partition's
// findings end up, such as a file path.
type PartitionLocator interface {
	Path(partition domain.Partition) string
}

// RunStore records the lifecycle of reconciliation runs.
type RunStore interface {
	CreateRun(ctx context.Context, runID uuid.UUID, category string) error
	UpdateProgress(ctx context.Context, runID uuid.UUID, processed, skipped int) error
	CompleteRun(ctx context.Context, runID uuid.UUID, result RunResult) error
	FailRun(ctx context.Context, runID uuid.UUID, cause error) error
}
