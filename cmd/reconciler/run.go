package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var runFormat string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a reconciliation and print the report",
	Long: `Run scans the settled feed, flushes findings per movement date to the
configured partition sink and prints the general report.

Example:
  reconciler run
  reconciler run --format json > report.json`,
	Args: cobra.NoArgs,
	RunE: runReconciliation,
}

func init() {
	runCmd.Flags().StringVar(&runFormat, "format", "text", "Output format: text or json")
	rootCmd.AddCommand(runCmd)
}

func runReconciliation(cmd *cobra.Command, args []string) error {
	if err := validateFormat(runFormat); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	if err := a.Migrate(); err != nil {
		return err
	}

	result, err := a.Service.Run(ctx, uuid.New())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if runFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Report)
	}
	_, err = fmt.Fprint(out, result.Text)
	return err
}
