package reconciliation

import (
	"context"
	"log/slog"
	"sort"

	"loan-reconciliation-backend/internal/domain"

	"github.com/google/uuid"
)

// BatchWriter buffers findings per movement date and hands them to a
// PartitionWriter once a date's buffer reaches the threshold. Dates are
// independent, so the scan order of the feed does not matter. Each finding
// gets the next sequence number of its partition, so the same document
// settled twice on one day yields two distinct rows.
type BatchWriter struct {
	sink      PartitionWriter
	runID     uuid.UUID
	category  string
	threshold int
	logger    *slog.Logger

	pending map[string][]domain.Finding
	seq     map[string]int
	flushes int
	written int
}

func NewBatchWriter(sink PartitionWriter, runID uuid.UUID, category string, threshold int, logger *slog.Logger) *BatchWriter {
	if threshold < 1 {
		threshold = 1
	}
	return &BatchWriter{
		sink:      sink,
		runID:     runID,
		category:  category,
		threshold: threshold,
		logger:    logger,
		pending:   make(map[string][]domain.Finding),
		seq:       make(map[string]int),
	}
}

// Add buffers f and flushes its date when the buffer is full.
func (w *BatchWriter) Add(ctx context.Context, f domain.Finding) error {
	date := f.DateKey()
	w.seq[date]++
	f.Seq = w.seq[date]
	w.pending[date] = append(w.pending[date], f)
	if len(w.pending[date]) >= w.threshold {
		return w.flush(ctx, date)
	}
	return nil
}

// FlushAll writes every non-empty buffer, oldest date first.
func (w *BatchWriter) FlushAll(ctx context.Context) error {
	dates := make([]string, 0, len(w.pending))
	for date, batch := range w.pending {
		if len(batch) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	for _, date := range dates {
		if err := w.flush(ctx, date); err != nil {
			return err
		}
	}
	return nil
}

func (w *BatchWriter) flush(ctx context.Context, date string) error {
	batch := w.pending[date]
	partition := domain.Partition{Category: w.category, Date: date}
	if err := w.sink.AppendFindings(ctx, w.runID, partition, batch); err != nil {
		return err
	}
	w.flushes++
	w.written += len(batch)
	delete(w.pending, date)
	w.logger.Debug("flushed findings", "partition", partition.String(), "count", len(batch))
	return nil
}

func (w *BatchWriter) Flushes() int {
	return w.flushes
}

func (w *BatchWriter) Written() int {
	return w.written
}

// Pending is the number of buffered, unflushed findings.
func (w *BatchWriter) Pending() int {
	n := 0
	for _, batch := range w.pending {
		n += len(batch)
	}
	return n
}
