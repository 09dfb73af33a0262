package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CultureBotAI/assay-metadata/internal/config"
	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/tracing"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config

	logCleanup func()
	tracer     *tracing.Provider
)

var rootCmd = &cobra.Command{
	Use:   "assay-metadata",
	Short: "Annotate bacterial phenotypic assay well codes",
	Long: `Resolves API kit well codes from strain phenotype data against curated
substrate and enzyme tables, aggregates the annotations into metadata
documents, and validates the chemical and enzymatic identifiers they carry.`,
	Version:           version,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/assay-metadata/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs (also enabled via ASSAY_METADATA_DEBUG)")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("extract.input", defaults.Extract.Input)
	viper.SetDefault("extract.output_dir", defaults.Extract.OutputDir)
	viper.SetDefault("extract.split_kits", defaults.Extract.SplitKits)
	viper.SetDefault("extract.pretty", defaults.Extract.Pretty)
	viper.SetDefault("extract.simple", defaults.Extract.Simple)
	viper.SetDefault("validate.ontology_dir", defaults.Validate.OntologyDir)
	viper.SetDefault("validate.report_path", defaults.Validate.ReportPath)
	viper.SetDefault("validate.cache_db", defaults.Validate.CacheDB)
	viper.SetDefault("validate.skip_cache", defaults.Validate.SkipCache)
	viper.SetDefault("oracle.pubchem_base_url", defaults.Oracle.PubchemBaseURL)
	viper.SetDefault("oracle.kegg_base_url", defaults.Oracle.KeggBaseURL)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .assay-metadata/config.yaml (current directory)
		// 2. ~/.config/assay-metadata/config.yaml (user config)
		if _, err := os.Stat(".assay-metadata/config.yaml"); err == nil {
			viper.SetConfigFile(".assay-metadata/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "assay-metadata"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine, anything else is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	debug := os.Getenv("ASSAY_METADATA_DEBUG") != "" || debugFlag
	if debug {
		logPath := os.Getenv("ASSAY_METADATA_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatConfig, "assay-metadata starting", "command", cmd.Name(), "config", viper.ConfigFileUsed())
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	tracer = provider
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if tracer != nil {
		_ = tracer.Shutdown(context.Background())
	}
	if logCleanup != nil {
		logCleanup()
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
