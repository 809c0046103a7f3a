package reconciliation

import "loan-reconciliation-backend/internal/domain"

// Aggregator keeps per-day finding counters for the whole run.
type Aggregator struct {
	days  domain.DailySummary
	kinds []domain.FindingKind
	seen  map[domain.FindingKind]bool
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		days: make(domain.DailySummary),
		seen: make(map[domain.FindingKind]bool),
	}
}

// Record counts one finding under its movement date.
func (a *Aggregator) Record(f domain.Finding) {
	key := f.DateKey()
	day, ok := a.days[key]
	if !ok {
		day = &domain.DaySummary{Date: key, ByKind: make(map[domain.FindingKind]int)}
		a.days[key] = day
	}
	if _, ok := day.ByKind[f.Kind]; !ok {
		day.Kinds = append(day.Kinds, f.Kind)
	}
	day.Total++
	day.ByKind[f.Kind]++

	if !a.seen[f.Kind] {
		a.seen[f.Kind] = true
		a.kinds = append(a.kinds, f.Kind)
	}
}

// Summary exposes the counters. Callers must not modify the result.
func (a *Aggregator) Summary() domain.DailySummary {
	return a.days
}

// Kinds lists every kind recorded, in first-encounter order across the run.
func (a *Aggregator) Kinds() []domain.FindingKind {
	return a.kinds
}
