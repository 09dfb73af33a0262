package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CultureBotAI/assay-metadata/internal/presentation"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

var validateFastCmd = &cobra.Command{
	Use:   "validate:fast",
	Short: "Validate registry identifiers against local ontology tables",
	Long: `Check every CHEBI ID, GO term, and EC number in the curated tables
against locally downloaded ontology node tables. No network access.

The ontology directory must hold chebi_nodes.tsv, go_nodes.tsv, and
ec_nodes.tsv. Missing tables are skipped with a warning and their
identifiers go unchecked.

Examples:
  assay-metadata validate:fast
  assay-metadata validate:fast --ontology-dir data/ontologies
  assay-metadata validate:fast --track-versions output/ontology_versions.json`,
	RunE: runValidateFast,
}

func init() {
	validateFastCmd.Flags().String("ontology-dir", "", "directory holding the ontology node tables")
	validateFastCmd.Flags().String("report", "", "write the validation report JSON to this path")
	validateFastCmd.Flags().String("track-versions", "", "record ontology file hashes to this path")

	rootCmd.AddCommand(validateFastCmd)
}

func runValidateFast(cmd *cobra.Command, _ []string) error {
	_, span := tracer.Tracer().Start(cmd.Context(), "validate.fast")
	defer span.End()

	applyValidateFlags(cmd)

	idx, err := validate.LoadIndexSet(cfg.Validate.OntologyDir)
	if err != nil {
		return fmt.Errorf("loading ontology tables: %w", err)
	}

	result := validate.New(registry.Default(), idx).ValidateRegistry()
	report := validate.BuildReport(result.Statistics, result.Findings)

	if trackPath, _ := cmd.Flags().GetString("track-versions"); trackPath != "" {
		if _, err := validate.TrackOntologyFiles(cfg.Validate.OntologyDir, trackPath); err != nil {
			return fmt.Errorf("tracking ontology versions: %w", err)
		}
	}

	return finishReport(cmd, report)
}

// applyValidateFlags folds the validation flags shared by the validate
// commands into the effective config.
func applyValidateFlags(cmd *cobra.Command) {
	if dir, _ := cmd.Flags().GetString("ontology-dir"); dir != "" {
		cfg.Validate.OntologyDir = dir
	}
	if path, _ := cmd.Flags().GetString("report"); path != "" {
		cfg.Validate.ReportPath = path
	}
}

// finishReport prints the report, persists it when a report path is
// configured, and turns an invalid report into a non-zero exit.
func finishReport(cmd *cobra.Command, report presentation.ReportDTO) error {
	printReport(report)

	if path := cfg.Validate.ReportPath; path != "" {
		writer, err := presentation.NewOutputWriter(filepath.Dir(path), true)
		if err != nil {
			return fmt.Errorf("preparing report directory: %w", err)
		}
		if err := writer.WriteReport(filepath.Base(path), report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Wrote report to %s\n", path)
	}

	if !report.Summary.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("validation failed with %d errors", report.Summary.TotalErrors)
	}
	return nil
}

func printReport(report presentation.ReportDTO) {
	for _, msg := range report.Errors {
		fmt.Printf("ERROR: %s\n", msg)
	}
	for _, msg := range report.Warnings {
		fmt.Printf("WARNING: %s\n", msg)
	}
	fmt.Printf("%d errors, %d warnings\n", report.Summary.TotalErrors, report.Summary.TotalWarnings)
	if report.Summary.Valid {
		fmt.Println("Validation passed")
	}
}

// mergeStats folds later maps into the first, summing shared keys.
func mergeStats(maps ...map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, m := range maps {
		for k, v := range m {
			merged[k] += v
		}
	}
	return merged
}
