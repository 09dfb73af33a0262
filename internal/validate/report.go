package validate

import (
	"github.com/google/uuid"

	"github.com/CultureBotAI/assay-metadata/internal/presentation"
)

// BuildReport folds findings into the report schema. Invalid and
// unresolved findings are errors; deprecated and unverified findings
// are warnings; valid findings only contribute to the statistics. The
// report is valid exactly when it carries no errors.
func BuildReport(stats map[string]int, findings ...[]Finding) presentation.ReportDTO {
	var all []Finding
	for _, fs := range findings {
		all = append(all, fs...)
	}
	sortFindings(all)

	report := presentation.ReportDTO{
		RunID:      uuid.NewString(),
		Statistics: map[string]int{},
		Errors:     []string{},
		Warnings:   []string{},
	}
	for key, n := range stats {
		report.Statistics[key] = n
	}

	for _, f := range all {
		switch f.Status {
		case StatusInvalid, StatusUnresolved:
			report.Errors = append(report.Errors, f.Message())
		case StatusDeprecated, StatusUnverified:
			report.Warnings = append(report.Warnings, f.Message())
		}
	}

	report.Summary = presentation.ReportSummary{
		TotalErrors:   len(report.Errors),
		TotalWarnings: len(report.Warnings),
		Valid:         len(report.Errors) == 0,
	}
	return report
}
