package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"loan-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report <run-id|latest>",
	Short: "Print the stored report of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  showReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "Output format: text or json")
	rootCmd.AddCommand(reportCmd)
}

func showReport(cmd *cobra.Command, args []string) error {
	if err := validateFormat(reportFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	var run *models.ReconciliationRun
	if args[0] == "latest" {
		run, err = a.Runs.LatestRun(ctx)
	} else {
		id, perr := uuid.Parse(args[0])
		if perr != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], perr)
		}
		run, err = a.Runs.GetRun(ctx, id)
	}
	if err != nil {
		return err
	}

	switch run.Status {
	case models.RunStatusCompleted:
	case models.RunStatusFailed:
		return fmt.Errorf("run %s failed: %s", run.ID, run.ErrorMessage)
	default:
		return fmt.Errorf("run %s is still %s (%d records processed)", run.ID, run.Status, run.ProcessedCount)
	}

	out := cmd.OutOrStdout()
	if reportFormat == "json" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, run.Report, "", "  "); err != nil {
			return fmt.Errorf("decode stored report: %w", err)
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(out)
		return err
	}
	_, err = fmt.Fprint(out, run.ReportText)
	return err
}
