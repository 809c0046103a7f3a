package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"loan-reconciliation-backend/internal/domain"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// trackedRuns bounds how many run states the service remembers. The oldest
// entries are evicted first and read back as StateIdle.
const trackedRuns = 128

// ErrRunInProgress is returned when a run is requested while another is active.
var ErrRunInProgress = errors.New("reconciliation run already in progress")

// RunState is the lifecycle position of a run.
type RunState string

const (
	StateIdle      RunState = "idle"
	StateScanning  RunState = "scanning"
	StateFlushing  RunState = "flushing"
	StateReporting RunState = "reporting"
	StateDone      RunState = "done"
	StateFailed    RunState = "failed"
)

// Options tunes a run. PaidStatus has no default and must be configured.
type Options struct {
	Category        string
	PaidStatus      string
	PageSize        int
	BatchThreshold  int
	CacheSize       int
	CacheResetEvery int
	ProgressEvery   int
}

func (o *Options) applyDefaults() {
	if o.Category == "" {
		o.Category = "settled"
	}
	if o.PageSize <= 0 {
		o.PageSize = 500
	}
	if o.BatchThreshold <= 0 {
		o.BatchThreshold = 500
	}
	if o.CacheSize <= 0 {
		o.CacheSize = 100
	}
	if o.ProgressEvery <= 0 {
		o.ProgressEvery = 100
	}
}

// Dependencies are the stores a run talks to. Runs may be nil.
type Dependencies struct {
	Ledger     LedgerStore
	Stock      StockStore
	Settled    SettledSource
	Partitions PartitionWriter
	Runs       RunStore
	Logger     *slog.Logger
}

// RunResult is what a completed run leaves behind.
type RunResult struct {
	RunID     uuid.UUID
	Report    domain.Report
	Text      string
	Summary   domain.DailySummary
	Processed int
	Skipped   int
	Findings  int
	Flushes   int
}

type ReconciliationService struct {
	deps    Dependencies
	opts    Options
	logger  *slog.Logger
	running atomic.Bool
	states  *lru.Cache[uuid.UUID, RunState]
}

func NewReconciliationService(deps Dependencies, opts Options) (*ReconciliationService, error) {
	if opts.PaidStatus == "" {
		return nil, domain.ErrMissingPaidStatus
	}
	opts.applyDefaults()
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	states, err := lru.New[uuid.UUID, RunState](trackedRuns)
	if err != nil {
		return nil, fmt.Errorf("create run state cache: %w", err)
	}
	return &ReconciliationService{
		deps:   deps,
		opts:   opts,
		logger: logger,
		states: states,
	}, nil
}

// ReconcileAndReport runs a full reconciliation and returns the text report.
func (s *ReconciliationService) ReconcileAndReport(ctx context.Context) (string, error) {
	result, err := s.Run(ctx, uuid.New())
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// Start launches a run in the background and returns its id.
func (s *ReconciliationService) Start(ctx context.Context) (uuid.UUID, error) {
	if !s.running.CompareAndSwap(false, true) {
		return uuid.Nil, ErrRunInProgress
	}
	runID := uuid.New()
	if err := s.createRun(ctx, runID); err != nil {
		s.running.Store(false)
		return uuid.Nil, err
	}
	go func() {
		defer s.running.Store(false)
		// The request context ends with the HTTP response; the run outlives it.
		_, _ = s.execute(context.WithoutCancel(ctx), runID)
	}()
	return runID, nil
}

// Run executes a reconciliation synchronously under the given id.
func (s *ReconciliationService) Run(ctx context.Context, runID uuid.UUID) (*RunResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer s.running.Store(false)

	if err := s.createRun(ctx, runID); err != nil {
		return nil, err
	}
	return s.execute(ctx, runID)
}

// State reports where a run started by this service currently is.
func (s *ReconciliationService) State(runID uuid.UUID) RunState {
	if st, ok := s.states.Peek(runID); ok {
		return st
	}
	return StateIdle
}

func (s *ReconciliationService) setState(runID uuid.UUID, st RunState) {
	s.states.Add(runID, st)
}

func (s *ReconciliationService) createRun(ctx context.Context, runID uuid.UUID) error {
	s.setState(runID, StateIdle)
	if s.deps.Runs == nil {
		return nil
	}
	if err := s.deps.Runs.CreateRun(ctx, runID, s.opts.Category); err != nil {
		return fmt.Errorf("create run %s: %w", runID, err)
	}
	return nil
}

func (s *ReconciliationService) execute(ctx context.Context, runID uuid.UUID) (*RunResult, error) {
	logger := s.logger.With("run_id", runID.String(), "category", s.opts.Category)
	// Recording the outcome must not be skipped because the run was cancelled.
	bookkeeping := context.WithoutCancel(ctx)

	result, err := s.pipeline(ctx, runID, logger)
	if err != nil {
		s.fail(bookkeeping, runID, logger, err)
		return nil, fmt.Errorf("reconciliation run %s failed: %w", runID, err)
	}

	if s.deps.Runs != nil {
		if err := s.deps.Runs.CompleteRun(bookkeeping, runID, *result); err != nil {
			err = fmt.Errorf("store results: %w", err)
			s.fail(bookkeeping, runID, logger, err)
			return nil, fmt.Errorf("reconciliation run %s failed: %w", runID, err)
		}
	}
	s.setState(runID, StateDone)
	logger.Info("reconciliation completed",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"findings", result.Findings,
		"flushes", result.Flushes,
	)
	return result, nil
}

func (s *ReconciliationService) fail(ctx context.Context, runID uuid.UUID, logger *slog.Logger, cause error) {
	s.setState(runID, StateFailed)
	logger.Error("reconciliation failed", "error", cause)
	if s.deps.Runs == nil {
		return
	}
	if err := s.deps.Runs.FailRun(ctx, runID, cause); err != nil {
		logger.Error("could not mark run failed", "error", err)
	}
}

func (s *ReconciliationService) pipeline(ctx context.Context, runID uuid.UUID, logger *slog.Logger) (*RunResult, error) {
	engine, err := NewEngine(s.deps.Ledger, s.deps.Stock, s.opts.PaidStatus, s.opts.CacheSize)
	if err != nil {
		return nil, err
	}
	aggregator := NewAggregator()
	writer := NewBatchWriter(s.deps.Partitions, runID, s.opts.Category, s.opts.BatchThreshold, logger)

	s.setState(runID, StateScanning)
	cursor, err := s.deps.Settled.OpenSettled(ctx, s.opts.PageSize)
	if err != nil {
		return nil, err
	}
	scanner := NewScanner(cursor, logger)
	defer func() {
		if cerr := scanner.Close(ctx); cerr != nil {
			logger.Warn("closing settled cursor", "error", cerr)
		}
	}()

	processed := 0
	for scanner.Next(ctx) {
		rec := scanner.Record()
		findings, err := engine.Reconcile(ctx, rec)
		if err != nil {
			return nil, err
		}
		for _, f := range findings {
			aggregator.Record(f)
			if err := writer.Add(ctx, f); err != nil {
				return nil, err
			}
		}

		processed++
		if s.opts.CacheResetEvery > 0 && processed%s.opts.CacheResetEvery == 0 {
			ledgerStats, stockStats := engine.CacheStats()
			logger.Info("processed settled records", "processed", processed,
				"ledger_cache_hits", ledgerStats.Hits, "stock_cache_hits", stockStats.Hits)
			engine.ClearCaches()
		}
		if processed%s.opts.ProgressEvery == 0 && s.deps.Runs != nil {
			if err := s.deps.Runs.UpdateProgress(ctx, runID, processed, scanner.Skipped()); err != nil {
				logger.Warn("could not update run progress", "error", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := scanner.Close(ctx); err != nil {
		logger.Warn("closing settled cursor", "error", err)
	}

	s.setState(runID, StateFlushing)
	if err := writer.FlushAll(ctx); err != nil {
		return nil, err
	}

	s.setState(runID, StateReporting)
	counts, err := s.sourceCounts(ctx)
	if err != nil {
		return nil, err
	}
	report := Summarize(s.opts.Category, aggregator.Summary(), aggregator.Kinds(), counts, scanner.Valid(), scanner.Skipped())
	report.RunID = runID.String()
	if locator, ok := s.deps.Partitions.(PartitionLocator); ok {
		for i := range report.Days {
			report.Days[i].Partition = locator.Path(domain.Partition{Category: s.opts.Category, Date: report.Days[i].Date})
		}
	}
	text, err := RenderText(report)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		RunID:     runID,
		Report:    report,
		Text:      text,
		Summary:   aggregator.Summary(),
		Processed: processed,
		Skipped:   scanner.Skipped(),
		Findings:  writer.Written(),
		Flushes:   writer.Flushes(),
	}, nil
}

func (s *ReconciliationService) sourceCounts(ctx context.Context) (domain.SourceCounts, error) {
	var counts domain.SourceCounts
	var err error
	if counts.Ledger, err = s.deps.Ledger.CountLedger(ctx); err != nil {
		return counts, err
	}
	if counts.Settled, err = s.deps.Settled.CountSettled(ctx); err != nil {
		return counts, err
	}
	if counts.Stock, err = s.deps.Stock.CountStock(ctx); err != nil {
		return counts, err
	}
	return counts, nil
}
