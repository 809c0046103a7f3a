package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/models"
	"loan-reconciliation-backend/internal/repository"
	service "loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultFindingLimit = 50
	maxFindingLimit     = 500
)

type ReconciliationHandler struct {
	service  *service.ReconciliationService
	runs     *repository.RunRepository
	findings repository.FindingStore
}

func NewReconciliationHandler(s *service.ReconciliationService, runs *repository.RunRepository, findings repository.FindingStore) *ReconciliationHandler {
	return &ReconciliationHandler{service: s, runs: runs, findings: findings}
}

// Run starts a reconciliation in the background.
func (h *ReconciliationHandler) Run(c *gin.Context) {
	runID, err := h.service.Start(c.Request.Context())
	if errors.Is(err, service.ErrRunInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"run_id": runID.String(),
		"status": models.RunStatusProcessing,
	})
}

func (h *ReconciliationHandler) GetRun(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run_id":          run.ID.String(),
		"category":        run.Category,
		"status":          run.Status,
		"state":           h.service.State(run.ID),
		"processed_count": run.ProcessedCount,
		"skipped_count":   run.SkippedCount,
		"finding_count":   run.FindingCount,
		"flush_count":     run.FlushCount,
		"started_at":      run.StartedAt,
		"completed_at":    run.CompletedAt,
		"error":           run.ErrorMessage,
	})
}

// GetReport returns the general report of a completed run, as JSON or, with
// ?format=text, as the rendered text.
func (h *ReconciliationHandler) GetReport(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	if run.Status != models.RunStatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "report not available", "status": run.Status})
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, run.ReportText)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", run.Report)
}

func (h *ReconciliationHandler) GetStats(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	stats, err := h.runs.GetRunStats(c.Request.Context(), run.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListFindings pages through a partition's findings. Without ?run_id it
// lists the latest run.
func (h *ReconciliationHandler) ListFindings(c *gin.Context) {
	q := repository.FindingQuery{
		Category: c.DefaultQuery("category", "settled"),
		Date:     c.Query("date"),
		Cursor:   c.Query("cursor"),
		Limit:    defaultFindingLimit,
	}

	if raw := c.Query("run_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
			return
		}
		q.RunID = id
	} else {
		run, err := h.runs.LatestRun(c.Request.Context())
		switch {
		case err == nil:
			q.RunID = run.ID
		case !errors.Is(err, repository.ErrRunNotFound):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if q.Date != "" {
		if _, err := time.Parse(domain.DateKeyLayout, q.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYYMMDD"})
			return
		}
	}
	if kind := c.Query("kind"); kind != "" && kind != "all" {
		if _, err := domain.ParseFindingKind(kind); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		q.Kind = kind
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if limit > maxFindingLimit {
			limit = maxFindingLimit
		}
		q.Limit = limit
	}

	page, err := h.findings.ListFindings(c.Request.Context(), q)
	if errors.Is(err, repository.ErrInvalidCursor) || errors.Is(err, repository.ErrPartitionRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       page.Items,
		"next_cursor": page.NextCursor,
		"has_more":    page.HasMore,
	})
}

func (h *ReconciliationHandler) loadRun(c *gin.Context) (*models.ReconciliationRun, bool) {
	id, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return nil, false
	}

	run, err := h.runs.GetRun(c.Request.Context(), id)
	if errors.Is(err, repository.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return run, true
}
