package reconciliation_test

import (
	"context"
	"testing"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_SkipsMalformedRecords(t *testing.T) {
	cursor := &sliceCursor{rows: []domain.SettledCandidate{
		settled("A", "2024-01-01"),
		{Document: "", MovementDate: dayPtr("2024-01-01")},
		{Document: "NODATE"},
		{Document: "   ", MovementDate: dayPtr("2024-01-02")},
		settled(" B ", "2024-01-02"),
	}}
	scanner := reconciliation.NewScanner(cursor, discardLogger())
	ctx := context.Background()

	var docs []string
	for scanner.Next(ctx) {
		docs = append(docs, scanner.Record().Document)
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"A", "B"}, docs)
	assert.Equal(t, 2, scanner.Valid())
	assert.Equal(t, 3, scanner.Skipped())

	require.NoError(t, scanner.Close(ctx))
	require.NoError(t, scanner.Close(ctx))
	assert.Equal(t, 1, cursor.closed)
}

func TestScanner_ReportsCursorFailure(t *testing.T) {
	cursor := &sliceCursor{
		rows:   []domain.SettledCandidate{settled("A", "2024-01-01"), settled("B", "2024-01-01")},
		failAt: 1,
	}
	scanner := reconciliation.NewScanner(cursor, discardLogger())
	ctx := context.Background()

	count := 0
	for scanner.Next(ctx) {
		count++
	}
	assert.Equal(t, 1, count)
	err := scanner.Err()
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
