package domain

import (
	"fmt"
	"time"
)

// FindingKind tags the type of inconsistency detected for a settled record.
type FindingKind string

const (
	KindNotFound           FindingKind = "NotFound"
	KindStatusInconsistent FindingKind = "StatusInconsistent"
	KindStockConflict      FindingKind = "StockConflict"
)

const (
	// SettledStatus is the status the settled feed implicitly reports.
	SettledStatus = "settled"

	DetailNotFound      = "settled record absent from ledger"
	DetailStockConflict = "settled record still present in stock feed"
)

// ParseFindingKind validates a kind coming from an external source (query string, stored row).
func ParseFindingKind(s string) (FindingKind, error) {
	switch k := FindingKind(s); k {
	case KindNotFound, KindStatusInconsistent, KindStockConflict:
		return k, nil
	}
	return "", fmt.Errorf("unknown finding kind %q", s)
}

// Finding is one detected inconsistency. Seq numbers the findings of one
// partition within a run, starting at 1; it is assigned when the finding is
// buffered for persistence and is zero before that.
type Finding struct {
	Kind         FindingKind `json:"kind"`
	Document     string      `json:"document"`
	MovementDate time.Time   `json:"movement_date"`
	Seq          int         `json:"seq,omitempty"`

	// Kind-specific detail fields.
	Detail         string `json:"detail,omitempty"`
	ReportedStatus string `json:"reported_status,omitempty"`
	LedgerStatus   string `json:"ledger_status,omitempty"`
}

// DateKey returns the YYYYMMDD key the finding is grouped under.
func (f Finding) DateKey() string {
	return f.MovementDate.Format(DateKeyLayout)
}

func NewNotFound(r SettledRecord) Finding {
	return Finding{
		Kind:         KindNotFound,
		Document:     r.Document,
		MovementDate: r.MovementDate,
		Detail:       DetailNotFound,
	}
}

func NewStatusInconsistent(r SettledRecord, ledgerStatus string) Finding {
	return Finding{
		Kind:           KindStatusInconsistent,
		Document:       r.Document,
		MovementDate:   r.MovementDate,
		ReportedStatus: SettledStatus,
		LedgerStatus:   ledgerStatus,
	}
}

func NewStockConflict(r SettledRecord) Finding {
	return Finding{
		Kind:         KindStockConflict,
		Document:     r.Document,
		MovementDate: r.MovementDate,
		Detail:       DetailStockConflict,
	}
}

// Partition addresses one persisted batch of findings.
type Partition struct {
	Category string
	Date     string
}

func (p Partition) String() string {
	return p.Category + "/" + p.Date
}
