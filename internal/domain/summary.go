package domain

import "sort"

// DaySummary holds the finding counters of a single movement date.
type DaySummary struct {
	Date   string
	Total  int
	ByKind map[FindingKind]int
	// Kinds lists the kinds in the order they were first seen on this day.
	Kinds []FindingKind
}

// DailySummary maps a YYYYMMDD key to its day counters.
type DailySummary map[string]*DaySummary

// Dates returns the summary keys in ascending order.
func (s DailySummary) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Total is the number of findings across all days.
func (s DailySummary) Total() int {
	total := 0
	for _, day := range s {
		total += day.Total
	}
	return total
}
