package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CultureBotAI/assay-metadata/internal/infrastructure/sqlite"
	"github.com/CultureBotAI/assay-metadata/internal/ingest"
	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/oracle"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
	"github.com/CultureBotAI/assay-metadata/internal/resolver"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

var validateFullCmd = &cobra.Command{
	Use:   "validate:full",
	Short: "Run every validation pass, including remote cross-checks",
	Long: `Run the local ontology pass, cross-check PubChem CIDs and KEGG KOs
against their services, and check well-code coverage against the strain
phenotype file. Verdicts from remote services are cached in a local
SQLite database so repeat runs stay fast.

Examples:
  assay-metadata validate:full
  assay-metadata validate:full --skip-cache
  assay-metadata validate:full --cache-db /tmp/verdicts.db --report output/report.json`,
	RunE: runValidateFull,
}

func init() {
	validateFullCmd.Flags().String("ontology-dir", "", "directory holding the ontology node tables")
	validateFullCmd.Flags().StringP("input", "i", "", "strain phenotype JSON file")
	validateFullCmd.Flags().String("report", "", "write the validation report JSON to this path")
	validateFullCmd.Flags().String("cache-db", "", "sqlite file for cross-check verdicts")
	validateFullCmd.Flags().Bool("skip-cache", false, "bypass cached verdicts and re-query services")

	rootCmd.AddCommand(validateFullCmd)
}

func runValidateFull(cmd *cobra.Command, _ []string) error {
	ctx, span := tracer.Tracer().Start(cmd.Context(), "validate.full")
	defer span.End()

	applyValidateFlags(cmd)
	if path, _ := cmd.Flags().GetString("cache-db"); path != "" {
		cfg.Validate.CacheDB = path
	}
	if cmd.Flags().Changed("skip-cache") {
		cfg.Validate.SkipCache, _ = cmd.Flags().GetBool("skip-cache")
	}

	reg := registry.Default()

	idx, err := validate.LoadIndexSet(cfg.Validate.OntologyDir)
	if err != nil {
		return fmt.Errorf("loading ontology tables: %w", err)
	}
	regResult := validate.New(reg, idx).ValidateRegistry()

	db, err := sqlite.NewDB(cfg.Validate.CacheDB)
	if err != nil {
		return fmt.Errorf("opening verdict cache: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.ErrorErr(log.CatDB, "Failed to close verdict cache", closeErr)
		}
	}()

	checker := oracle.NewCrossChecker(
		oracle.NewPubchemClient(cfg.Oracle.PubchemBaseURL, nil),
		oracle.NewKeggClient(cfg.Oracle.KeggBaseURL, nil),
		sqlite.NewVerdictRepository(db),
		cfg.Validate.SkipCache,
	)
	oracleFindings, err := checker.Run(ctx, reg)
	if err != nil {
		return fmt.Errorf("cross-checking identifiers: %w", err)
	}

	input := cfg.Extract.Input
	if flagInput, _ := cmd.Flags().GetString("input"); flagInput != "" {
		input = flagInput
	}
	ext, err := ingest.LoadFile(input)
	if err != nil {
		return fmt.Errorf("loading strain data: %w", err)
	}
	covResult := validate.New(reg, idx).ValidateCoverage(resolver.New(reg), ext)

	stats := mergeStats(regResult.Statistics, map[string]int{
		"coverage_total_pairs": covResult.TotalPairs,
		"coverage_unresolved":  covResult.Unresolved,
	})
	report := validate.BuildReport(stats, regResult.Findings, oracleFindings, covResult.Findings)
	return finishReport(cmd, report)
}
