package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CultureBotAI/assay-metadata/internal/ingest"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
	"github.com/CultureBotAI/assay-metadata/internal/resolver"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

var validateCoverageCmd = &cobra.Command{
	Use:   "validate:coverage",
	Short: "Check well-code coverage against strain phenotype data",
	Long: `Replay every kit and well code observed in the strain phenotype file
through the resolver and report the codes that fail to resolve, with
per-kit coverage percentages.

Examples:
  assay-metadata validate:coverage
  assay-metadata validate:coverage --snapshot data/biolog_strain_data.json`,
	RunE: runValidateCoverage,
}

func init() {
	validateCoverageCmd.Flags().StringP("snapshot", "s", "", "strain phenotype JSON file to replay (default: extract input)")
	rootCmd.AddCommand(validateCoverageCmd)
}

func runValidateCoverage(cmd *cobra.Command, _ []string) error {
	_, span := tracer.Tracer().Start(cmd.Context(), "validate.coverage")
	defer span.End()

	input := cfg.Extract.Input
	if snapshot, _ := cmd.Flags().GetString("snapshot"); snapshot != "" {
		input = snapshot
	}

	ext, err := ingest.LoadFile(input)
	if err != nil {
		return fmt.Errorf("loading strain data: %w", err)
	}

	reg := registry.Default()
	result := validate.New(reg, nil).ValidateCoverage(resolver.New(reg), ext)

	for _, kit := range result.Kits {
		fmt.Printf("%-24s %3d/%3d wells mapped (%.1f%%)\n",
			kit.Kit, kit.Mapped, kit.TotalWells, kit.CoveragePercent)
	}

	stats := map[string]int{
		"coverage_total_pairs": result.TotalPairs,
		"coverage_unresolved":  result.Unresolved,
	}
	return finishReport(cmd, validate.BuildReport(stats, result.Findings))
}
