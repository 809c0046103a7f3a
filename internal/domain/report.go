package domain

import "time"

// SourceCounts holds the size of each record set at report time.
type SourceCounts struct {
	Ledger  int64 `json:"ledger"`
	Settled int64 `json:"settled"`
	Stock   int64 `json:"stock"`
}

type KindTotal struct {
	Kind       FindingKind `json:"kind"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage"`
}

type KindCount struct {
	Kind  FindingKind `json:"kind"`
	Count int         `json:"count"`
}

type DayReport struct {
	Date      string      `json:"date"`
	Total     int         `json:"total"`
	Kinds     []KindCount `json:"kinds"`
	Partition string      `json:"partition"`
}

// Report is the general report produced once per run and comparison category.
type Report struct {
	RunID          string       `json:"run_id,omitempty"`
	Category       string       `json:"category"`
	GeneratedAt    time.Time    `json:"generated_at"`
	SourceCounts   SourceCounts `json:"source_counts"`
	ScannedRecords int          `json:"scanned_records"`
	SkippedRecords int          `json:"skipped_records"`
	TotalFindings  int          `json:"total_findings"`
	Kinds          []KindTotal  `json:"kinds"`
	Days           []DayReport  `json:"days"`
}
