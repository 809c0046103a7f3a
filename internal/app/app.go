// Package app wires configuration, stores and the reconciliation service
// together for the server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"loan-reconciliation-backend/internal/config"
	"loan-reconciliation-backend/internal/models"
	"loan-reconciliation-backend/internal/repository"
	"loan-reconciliation-backend/internal/repository/mongostore"
	"loan-reconciliation-backend/internal/services/reconciliation"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	DB      *gorm.DB
	Mongo   *mongo.Client
	Service *reconciliation.ReconciliationService

	Runs *repository.RunRepository
	// Findings is the partition sink the service writes to.
	Findings repository.FindingStore
}

// New opens the SQL database (always needed for run history) and, when the
// record source is mongo, the MongoDB client.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := config.InitDB(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	a := &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Runs:   repository.NewRunRepository(db),
	}

	deps := reconciliation.Dependencies{
		Runs:   a.Runs,
		Logger: logger,
	}

	switch cfg.RecordSource {
	case config.SourceMongo:
		client, err := config.InitMongo(ctx, cfg.Mongo)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.Mongo = client
		store := mongostore.New(client, cfg.Mongo.LedgerDB, cfg.Mongo.FundsDB)
		if err := store.EnsureIndexes(ctx); err != nil {
			a.Close(ctx)
			return nil, err
		}
		deps.Ledger, deps.Stock, deps.Settled = store, store, store
	default:
		deps.Ledger = repository.NewLoanRepository(db)
		deps.Stock = repository.NewStockLoanRepository(db)
		deps.Settled = repository.NewSettledLoanRepository(db)
	}

	switch cfg.Reconciliation.PartitionSink {
	case config.SinkFile:
		a.Findings = repository.NewFilePartitionWriter(cfg.Reconciliation.ResultsDir)
	default:
		a.Findings = repository.NewFindingRepository(db)
	}
	deps.Partitions = a.Findings

	svc, err := reconciliation.NewReconciliationService(deps, cfg.Reconciliation.Options())
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.Service = svc
	return a, nil
}

// Migrate creates or updates every table the service uses.
func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (a *App) Close(ctx context.Context) {
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			a.Logger.Warn("disconnecting mongo", "error", err)
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
