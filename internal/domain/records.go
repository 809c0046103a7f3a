package domain

import (
	"strings"
	"time"
)

// DateKeyLayout is the calendar-day key used for summaries and partitions.
const DateKeyLayout = "20060102"

// LedgerRecord is a loan contract as tracked by the internal ledger.
type LedgerRecord struct {
	Document string `json:"document"`
	Status   string `json:"status"`
}

// StockRecord is a loan still reported as outstanding by the stock feed.
type StockRecord struct {
	Document string `json:"document"`
}

// SettledCandidate is a settled-feed row exactly as a store cursor delivered it.
// It has not been validated; use ValidateSettled before handing it to the engine.
type SettledCandidate struct {
	Document     string
	MovementDate *time.Time
}

// SettledRecord is a validated settlement event.
type SettledRecord struct {
	Document     string    `json:"document"`
	MovementDate time.Time `json:"movement_date"`
}

// DateKey returns the YYYYMMDD key of the movement date.
func (r SettledRecord) DateKey() string {
	return r.MovementDate.Format(DateKeyLayout)
}

// ValidateSettled turns a raw candidate into a SettledRecord.
// Records without a document key or a movement date are rejected (ok == false).
func ValidateSettled(c SettledCandidate) (SettledRecord, bool) {
	doc := strings.TrimSpace(c.Document)
	if doc == "" {
		return SettledRecord{}, false
	}
	if c.MovementDate == nil || c.MovementDate.IsZero() {
		return SettledRecord{}, false
	}
	return SettledRecord{
		Document:     doc,
		MovementDate: truncateToDay(*c.MovementDate),
	}, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
