package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"loan-reconciliation-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePartitionWriter_Append(t *testing.T) {
	dir := t.TempDir()
	w := NewFilePartitionWriter(dir)
	ctx := context.Background()
	partition := domain.Partition{Category: "settled", Date: "20240101"}

	missing, err := w.ReadPartition(partition)
	require.NoError(t, err)
	assert.Empty(t, missing)

	require.NoError(t, w.AppendFindings(ctx, uuid.New(), partition, findingsFor("2024-01-01", "A", "B")))
	require.NoError(t, w.AppendFindings(ctx, uuid.New(), partition, findingsFor("2024-01-01", "C")))

	assert.FileExists(t, filepath.Join(dir, "settled", "findings_20240101.jsonl"))

	got, err := w.ReadPartition(partition)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Document)
	assert.Equal(t, "C", got[2].Document)
	assert.Equal(t, domain.KindNotFound, got[2].Kind)
	assert.True(t, got[0].MovementDate.Equal(day("2024-01-01")))
}

func TestFilePartitionWriter_CorruptLog(t *testing.T) {
	dir := t.TempDir()
	partition := domain.Partition{Category: "settled", Date: "20240102"}
	path := filepath.Join(dir, "settled", "findings_20240102.jsonl")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{\"kind\":\"NotFound\",\"document\":\"A\"}\nnot json\n"), 0o644))

	w := NewFilePartitionWriter(dir)
	err := w.AppendFindings(context.Background(), uuid.New(), partition, findingsFor("2024-01-02", "B"))
	assert.ErrorIs(t, err, domain.ErrCorruptPartition)

	// Nothing was appended to the corrupt log.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "\"B\"")
}

func TestFilePartitionWriter_ExistingLogKept(t *testing.T) {
	dir := t.TempDir()
	partition := domain.Partition{Category: "settled", Date: "20240103"}
	first := NewFilePartitionWriter(dir)
	require.NoError(t, first.AppendFindings(context.Background(), uuid.New(), partition, findingsFor("2024-01-03", "A")))

	// A new process appends to the log written by the previous one.
	second := NewFilePartitionWriter(dir)
	require.NoError(t, second.AppendFindings(context.Background(), uuid.New(), partition, findingsFor("2024-01-03", "B")))

	got, err := second.ReadPartition(partition)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFilePartitionWriter_ListFindings(t *testing.T) {
	w := NewFilePartitionWriter(t.TempDir())
	ctx := context.Background()
	partition := domain.Partition{Category: "settled", Date: "20240101"}
	first, second := uuid.New(), uuid.New()

	batch := findingsFor("2024-01-01", "A", "B", "C")
	conflict := domain.NewStockConflict(domain.SettledRecord{Document: "D", MovementDate: day("2024-01-01")})
	conflict.Seq = 4
	batch = append(batch, conflict)
	require.NoError(t, w.AppendFindings(ctx, first, partition, batch))
	require.NoError(t, w.AppendFindings(ctx, second, partition, findingsFor("2024-01-01", "Z")))

	var seen []string
	cursor := ""
	for {
		page, err := w.ListFindings(ctx, FindingQuery{RunID: first, Category: "settled", Date: "20240101", Cursor: cursor, Limit: 3})
		require.NoError(t, err)
		for _, f := range page.Items {
			seen = append(seen, f.Document)
		}
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, seen)

	page, err := w.ListFindings(ctx, FindingQuery{RunID: first, Category: "settled", Date: "20240101", Kind: string(domain.KindStockConflict)})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 4, page.Items[0].Seq)

	all, err := w.ListFindings(ctx, FindingQuery{Category: "settled", Date: "20240101"})
	require.NoError(t, err)
	assert.Len(t, all.Items, 5)

	empty, err := w.ListFindings(ctx, FindingQuery{Category: "settled", Date: "20991231"})
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)

	_, err = w.ListFindings(ctx, FindingQuery{Category: "settled"})
	assert.ErrorIs(t, err, ErrPartitionRequired)
	_, err = w.ListFindings(ctx, FindingQuery{Category: "settled", Date: "20240101", Cursor: "x"})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}
