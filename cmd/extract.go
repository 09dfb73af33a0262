package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CultureBotAI/assay-metadata/internal/aggregate"
	"github.com/CultureBotAI/assay-metadata/internal/ingest"
	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/presentation"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
	"github.com/CultureBotAI/assay-metadata/internal/resolver"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract assay metadata from strain phenotype data",
	Long: `Read well codes from a strain phenotype JSON file, resolve each one
against the curated substrate and enzyme tables, and write the aggregated
metadata documents to the output directory.

Generated files:
  assay_metadata.json     kits, wells, enzymes, and statistics
  api_kits_list.json      kit inventory with well counts
  statistics.json         aggregate statistics (always indented)
  kits/<kit>.json         per-kit well annotations (with --split-kits)
  assay_kits_simple.json  flat all-lists document (with --simple)

Examples:
  assay-metadata extract
  assay-metadata extract -i data/biolog_strain_data.json -o output
  assay-metadata extract --split-kits --simple`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringP("input", "i", "", "strain phenotype JSON file")
	extractCmd.Flags().StringP("output-dir", "o", "", "directory for generated documents")
	extractCmd.Flags().Bool("split-kits", false, "write one JSON file per kit under kits/")
	extractCmd.Flags().Bool("pretty", true, "indent generated JSON")
	extractCmd.Flags().Bool("simple", false, "also write the flat all-lists document")
	extractCmd.Flags().Bool("skip-cache", false, "bypass the resolution cache")

	_ = viper.BindPFlag("extract.input", extractCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("extract.output_dir", extractCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("extract.split_kits", extractCmd.Flags().Lookup("split-kits"))
	_ = viper.BindPFlag("extract.pretty", extractCmd.Flags().Lookup("pretty"))
	_ = viper.BindPFlag("extract.simple", extractCmd.Flags().Lookup("simple"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx, span := tracer.Tracer().Start(cmd.Context(), "extract")
	defer span.End()

	skipCache, _ := cmd.Flags().GetBool("skip-cache")

	log.Info(log.CatIngest, "Loading strain data", "path", cfg.Extract.Input)
	ext, err := ingest.LoadFile(cfg.Extract.Input)
	if err != nil {
		return fmt.Errorf("loading strain data: %w", err)
	}

	reg := registry.Default()
	agg := aggregate.New(reg, resolver.New(reg), skipCache)

	result, err := agg.Build(ctx, ext)
	if err != nil {
		return fmt.Errorf("building metadata: %w", err)
	}

	writer, err := presentation.NewOutputWriter(cfg.Extract.OutputDir, cfg.Extract.Pretty)
	if err != nil {
		return fmt.Errorf("preparing output directory: %w", err)
	}
	if err := writer.WriteAll(result, cfg.Extract.SplitKits, cfg.Extract.Simple); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	stats := result.Statistics
	fmt.Printf("Processed %d strains (%d skipped)\n", stats.TotalStrains, stats.SkippedStrains)
	fmt.Printf("Kits: %d  Wells: %d  Enzymes: %d\n",
		stats.TotalKits, stats.TotalUniqueWells, stats.TotalUniqueEnzymes)
	fmt.Printf("Wrote metadata to %s\n", cfg.Extract.OutputDir)
	return nil
}
