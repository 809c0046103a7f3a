package reconciliation

import (
	"context"
	"fmt"
	"log/slog"

	"loan-reconciliation-backend/internal/domain"
)

// Scanner walks a settled cursor and yields only records that pass
// domain.ValidateSettled. Invalid rows are counted and dropped.
type Scanner struct {
	cursor  SettledCursor
	logger  *slog.Logger
	current domain.SettledRecord
	scanned int
	skipped int
	closed  bool
}

func NewScanner(cursor SettledCursor, logger *slog.Logger) *Scanner {
	return &Scanner{cursor: cursor, logger: logger}
}

// Next advances to the next valid record. It returns false at the end of the
// feed or on a cursor error; check Err afterwards.
func (s *Scanner) Next(ctx context.Context) bool {
	for s.cursor.Next(ctx) {
		s.scanned++
		candidate := s.cursor.Candidate()
		rec, ok := domain.ValidateSettled(candidate)
		if !ok {
			s.skipped++
			s.logger.Debug("skipping malformed settled record", "document", candidate.Document)
			continue
		}
		s.current = rec
		return true
	}
	return false
}

func (s *Scanner) Record() domain.SettledRecord {
	return s.current
}

func (s *Scanner) Err() error {
	if err := s.cursor.Err(); err != nil {
		return fmt.Errorf("%w: settled cursor: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Valid is the number of records handed out so far.
func (s *Scanner) Valid() int {
	return s.scanned - s.skipped
}

func (s *Scanner) Skipped() int {
	return s.skipped
}

// Close releases the cursor. It is idempotent so it can be deferred.
func (s *Scanner) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.cursor.Close(ctx)
}
