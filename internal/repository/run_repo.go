package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loan-reconciliation-backend/internal/models"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrRunNotFound is returned when no run carries the requested id.
var ErrRunNotFound = errors.New("reconciliation run not found")

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) CreateRun(ctx context.Context, runID uuid.UUID, category string) error {
	now := time.Now()
	run := &models.ReconciliationRun{
		ID:        runID,
		Category:  category,
		Status:    models.RunStatusProcessing,
		StartedAt: now,
		CreatedAt: now,
	}
	return r.db.WithContext(ctx).Create(run).Error
}

// UpdateProgress updates the counters of a processing run.
func (r *RunRepository) UpdateProgress(ctx context.Context, runID uuid.UUID, processed, skipped int) error {
	return r.db.WithContext(ctx).
		Model(&models.ReconciliationRun{}).
		Where("id = ?", runID).
		Updates(map[string]interface{}{
			"processed_count": processed,
			"skipped_count":   skipped,
		}).Error
}

// CompleteRun stores the final counters, both report forms and the daily
// summary rows in one transaction.
func (r *RunRepository) CompleteRun(ctx context.Context, runID uuid.UUID, result reconciliation.RunResult) error {
	report, err := json.Marshal(result.Report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	var summaries []models.DailySummary
	for _, date := range result.Summary.Dates() {
		day := result.Summary[date]
		for pos, kind := range day.Kinds {
			summaries = append(summaries, models.DailySummary{
				RunID:    runID,
				Date:     date,
				Kind:     string(kind),
				Position: pos,
				Count:    day.ByKind[kind],
			})
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(summaries) > 0 {
			if err := tx.CreateInBatches(&summaries, 200).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.ReconciliationRun{}).
			Where("id = ?", runID).
			Updates(map[string]interface{}{
				"status":          models.RunStatusCompleted,
				"processed_count": result.Processed,
				"skipped_count":   result.Skipped,
				"finding_count":   result.Findings,
				"flush_count":     result.Flushes,
				"report":          datatypes.JSON(report),
				"report_text":     result.Text,
				"completed_at":    time.Now(),
			}).Error
	})
}

func (r *RunRepository) FailRun(ctx context.Context, runID uuid.UUID, cause error) error {
	return r.db.WithContext(ctx).
		Model(&models.ReconciliationRun{}).
		Where("id = ?", runID).
		Updates(map[string]interface{}{
			"status":        models.RunStatusFailed,
			"error_message": cause.Error(),
			"completed_at":  time.Now(),
		}).Error
}

func (r *RunRepository) GetRun(ctx context.Context, runID uuid.UUID) (*models.ReconciliationRun, error) {
	var run models.ReconciliationRun
	err := r.db.WithContext(ctx).First(&run, "id = ?", runID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// LatestRun returns the most recently started run, if any.
func (r *RunRepository) LatestRun(ctx context.Context) (*models.ReconciliationRun, error) {
	var run models.ReconciliationRun
	err := r.db.WithContext(ctx).Order("started_at DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

type KindStat struct {
	Kind  string `json:"kind"`
	Count int64  `json:"count"`
	Days  int64  `json:"days"`
}

type RunStats struct {
	Total int64      `json:"total"`
	Days  int64      `json:"days"`
	Kinds []KindStat `json:"kinds"`
}

// GetRunStats aggregates the daily summary rows of a run by kind.
func (r *RunRepository) GetRunStats(ctx context.Context, runID uuid.UUID) (RunStats, error) {
	var stats RunStats
	var rows []KindStat

	err := r.db.WithContext(ctx).
		Model(&models.DailySummary{}).
		Where("run_id = ?", runID).
		Select("kind, COALESCE(SUM(count),0) as count, COUNT(DISTINCT date) as days").
		Group("kind").
		Order("kind ASC").
		Scan(&rows).Error
	if err != nil {
		return stats, err
	}

	err = r.db.WithContext(ctx).
		Model(&models.DailySummary{}).
		Where("run_id = ?", runID).
		Distinct("date").
		Count(&stats.Days).Error
	if err != nil {
		return stats, err
	}

	for _, row := range rows {
		stats.Total += row.Count
	}
	stats.Kinds = rows
	return stats, nil
}
