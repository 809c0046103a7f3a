package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/models"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInvalidCursor is returned for a malformed pagination cursor.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrPartitionRequired is returned when a listing needs a category and date.
	ErrPartitionRequired = errors.New("category and date are required")
)

// FindingStore is a partition sink that can page back through what it stored.
type FindingStore interface {
	reconciliation.PartitionWriter
	ListFindings(ctx context.Context, q FindingQuery) (FindingPage, error)
}

type FindingRepository struct {
	db        *gorm.DB
	batchSize int
}

func NewFindingRepository(db *gorm.DB) *FindingRepository {
	return &FindingRepository{db: db, batchSize: 200}
}

type findingDetails struct {
	Detail         string `json:"detail,omitempty"`
	ReportedStatus string `json:"reported_status,omitempty"`
	LedgerStatus   string `json:"ledger_status,omitempty"`
}

// AppendFindings inserts the findings into the partition's rows. A finding
// already stored under the same (run, category, date, seq) is left as is, so
// flushing the same batch of a run twice does not duplicate it.
func (r *FindingRepository) AppendFindings(ctx context.Context, runID uuid.UUID, partition domain.Partition, findings []domain.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	rows := make([]models.Finding, 0, len(findings))
	for _, f := range findings {
		details, err := json.Marshal(findingDetails{
			Detail:         f.Detail,
			ReportedStatus: f.ReportedStatus,
			LedgerStatus:   f.LedgerStatus,
		})
		if err != nil {
			return fmt.Errorf("%w: encode finding %s: %w", domain.ErrPartitionIO, f.Document, err)
		}
		rows = append(rows, models.Finding{
			RunID:         runID,
			Category:      partition.Category,
			PartitionDate: partition.Date,
			Seq:           f.Seq,
			Kind:          string(f.Kind),
			Document:      f.Document,
			MovementDate:  f.MovementDate,
			Details:       datatypes.JSON(details),
		})
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&rows, r.batchSize).Error
	if err != nil {
		return fmt.Errorf("%w: write partition %s: %w", domain.ErrPartitionIO, partition, err)
	}
	return nil
}

// FindingQuery selects stored findings. A zero RunID matches every run.
type FindingQuery struct {
	RunID    uuid.UUID
	Category string
	Date     string
	Kind     string
	Cursor   string
	Limit    int
}

type FindingPage struct {
	Items      []domain.Finding `json:"items"`
	NextCursor string           `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}

// ListFindings pages through stored findings ordered by id.
func (r *FindingRepository) ListFindings(ctx context.Context, q FindingQuery) (FindingPage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	query := r.db.WithContext(ctx).
		Model(&models.Finding{}).
		Order("id ASC").
		Limit(limit + 1)

	if q.RunID != uuid.Nil {
		query = query.Where("run_id = ?", q.RunID)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Date != "" {
		query = query.Where("partition_date = ?", q.Date)
	}
	if q.Kind != "" && q.Kind != "all" {
		query = query.Where("kind = ?", q.Kind)
	}
	if q.Cursor != "" {
		after, err := strconv.ParseUint(q.Cursor, 10, 64)
		if err != nil {
			return FindingPage{}, fmt.Errorf("%w: %q", ErrInvalidCursor, q.Cursor)
		}
		query = query.Where("id > ?", after)
	}

	var rows []models.Finding
	if err := query.Find(&rows).Error; err != nil {
		return FindingPage{}, fmt.Errorf("%w: list findings: %w", domain.ErrPartitionIO, err)
	}

	page := FindingPage{Items: make([]domain.Finding, 0, len(rows))}
	if len(rows) > limit {
		page.HasMore = true
		page.NextCursor = strconv.FormatUint(rows[limit-1].ID, 10)
		rows = rows[:limit]
	}
	for _, row := range rows {
		f, err := toDomainFinding(row)
		if err != nil {
			return FindingPage{}, err
		}
		page.Items = append(page.Items, f)
	}
	return page, nil
}

// CountPartition returns how many findings a run stored in a partition.
func (r *FindingRepository) CountPartition(ctx context.Context, runID uuid.UUID, partition domain.Partition) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Finding{}).
		Where("run_id = ? AND category = ? AND partition_date = ?", runID, partition.Category, partition.Date).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count partition %s: %w", domain.ErrPartitionIO, partition, err)
	}
	return n, nil
}

func toDomainFinding(row models.Finding) (domain.Finding, error) {
	kind, err := domain.ParseFindingKind(row.Kind)
	if err != nil {
		return domain.Finding{}, fmt.Errorf("%w: finding %d: %w", domain.ErrCorruptPartition, row.ID, err)
	}
	var details findingDetails
	if len(row.Details) > 0 {
		if err := json.Unmarshal(row.Details, &details); err != nil {
			return domain.Finding{}, fmt.Errorf("%w: finding %d details: %w", domain.ErrCorruptPartition, row.ID, err)
		}
	}
	return domain.Finding{
		Kind:           kind,
		Document:       row.Document,
		MovementDate:   row.MovementDate,
		Seq:            row.Seq,
		Detail:         details.Detail,
		ReportedStatus: details.ReportedStatus,
		LedgerStatus:   details.LedgerStatus,
	}, nil
}
