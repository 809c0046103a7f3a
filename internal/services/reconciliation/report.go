package reconciliation

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"loan-reconciliation-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// Summarize derives the general report from the final daily summary.
// Percentages are relative to the number of valid settled records scanned.
func Summarize(category string, summary domain.DailySummary, kinds []domain.FindingKind, counts domain.SourceCounts, scanned, skipped int) domain.Report {
	report := domain.Report{
		Category:       category,
		GeneratedAt:    time.Now().UTC(),
		SourceCounts:   counts,
		ScannedRecords: scanned,
		SkippedRecords: skipped,
		TotalFindings:  summary.Total(),
		Kinds:          make([]domain.KindTotal, 0, len(kinds)),
		Days:           make([]domain.DayReport, 0, len(summary)),
	}

	totals := make(map[domain.FindingKind]int, len(kinds))
	for _, day := range summary {
		for kind, n := range day.ByKind {
			totals[kind] += n
		}
	}
	for _, kind := range kinds {
		report.Kinds = append(report.Kinds, domain.KindTotal{
			Kind:       kind,
			Count:      totals[kind],
			Percentage: percentage(totals[kind], scanned).InexactFloat64(),
		})
	}

	for _, date := range summary.Dates() {
		day := summary[date]
		dr := domain.DayReport{
			Date:      date,
			Total:     day.Total,
			Kinds:     make([]domain.KindCount, 0, len(day.Kinds)),
			Partition: domain.Partition{Category: category, Date: date}.String(),
		}
		for _, kind := range day.Kinds {
			dr.Kinds = append(dr.Kinds, domain.KindCount{Kind: kind, Count: day.ByKind[kind]})
		}
		report.Days = append(report.Days, dr)
	}
	return report
}

func percentage(count, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total)))
}

var textReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(p float64) string {
		return decimal.NewFromFloat(p).StringFixed(2) + "%"
	},
}).Parse(`Inconsistency report by day ({{.Category}})

{{range .Days -}}
Date: {{.Date}}
Total inconsistencies: {{.Total}}
By kind:
{{range .Kinds}}- {{.Kind}}: {{.Count}}
{{end -}}
Partition: {{.Partition}}

{{end -}}
Sources: ledger={{.SourceCounts.Ledger}} settled={{.SourceCounts.Settled}} stock={{.SourceCounts.Stock}}
Settled records scanned: {{.ScannedRecords}} (skipped {{.SkippedRecords}})
Total inconsistencies: {{.TotalFindings}}
{{range .Kinds}}- {{.Kind}}: {{.Count}} ({{pct .Percentage}} of settled records)
{{end -}}
`))

// RenderText renders the report for humans. Output is deterministic for a given report.
func RenderText(report domain.Report) (string, error) {
	var buf bytes.Buffer
	if err := textReport.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
