package reconciliation_test

import (
	"testing"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_Record(t *testing.T) {
	agg := reconciliation.NewAggregator()

	agg.Record(domain.NewNotFound(record("A", "2024-01-01")))
	agg.Record(domain.NewStatusInconsistent(record("C", "2024-01-02"), "PENDING"))
	agg.Record(domain.NewStockConflict(record("C", "2024-01-02")))
	agg.Record(domain.NewNotFound(record("D", "2024-01-02")))
	agg.Record(domain.NewStockConflict(record("D", "2024-01-02")))

	summary := agg.Summary()
	require.Len(t, summary, 2)
	assert.Equal(t, []string{"20240101", "20240102"}, summary.Dates())

	assert.Equal(t, 1, summary["20240101"].Total)
	assert.Equal(t, 1, summary["20240101"].ByKind[domain.KindNotFound])

	day := summary["20240102"]
	assert.Equal(t, 4, day.Total)
	assert.Equal(t, map[domain.FindingKind]int{
		domain.KindStatusInconsistent: 1,
		domain.KindStockConflict:      2,
		domain.KindNotFound:           1,
	}, day.ByKind)
	assert.Equal(t, []domain.FindingKind{
		domain.KindStatusInconsistent,
		domain.KindStockConflict,
		domain.KindNotFound,
	}, day.Kinds)

	assert.Equal(t, []domain.FindingKind{
		domain.KindNotFound,
		domain.KindStatusInconsistent,
		domain.KindStockConflict,
	}, agg.Kinds())
	assert.Equal(t, 5, summary.Total())
}

func TestAggregator_TotalsMatchKindCounts(t *testing.T) {
	agg := reconciliation.NewAggregator()
	dates := []string{"2024-03-02", "2024-03-01", "2024-03-02", "2024-03-03", "2024-03-01"}
	emitted := map[string]int{}
	for i, d := range dates {
		rec := record(string(rune('A'+i)), d)
		agg.Record(domain.NewNotFound(rec))
		agg.Record(domain.NewStockConflict(rec))
		emitted[rec.DateKey()] += 2
	}

	for date, day := range agg.Summary() {
		sum := 0
		for _, n := range day.ByKind {
			sum += n
		}
		assert.Equal(t, day.Total, sum, date)
		assert.Equal(t, emitted[date], day.Total, date)
	}
}
