package main

import (
	"context"
	"fmt"
	"os"

	"loan-reconciliation-backend/internal/app"
	"loan-reconciliation-backend/internal/config"
	"loan-reconciliation-backend/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "reconciler",
	Short: "Loan settlement reconciliation",
	Long: `reconciler cross-checks the settled loans feed against the internal loan
ledger and the outstanding stock feed, stores the inconsistencies it finds by
movement date and prints a general report.

Configuration comes from the environment (and an optional .env file).
RECON_PAID_STATUS must be set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")
}

// openApp loads configuration and connects the stores.
func openApp(ctx context.Context) (*app.App, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logger := logging.NewLogger(os.Stderr, cfg.Logging.Format, logging.LevelFromString(cfg.Logging.Level))

	return app.New(ctx, cfg, logger)
}

func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("unsupported format %q (want text or json)", format)
}
