// Package config provides configuration types and defaults for assay-metadata.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/tracing"
)

// ExtractConfig controls the metadata extraction pipeline.
type ExtractConfig struct {
	Input     string `mapstructure:"input" yaml:"input"`           // strain phenotype JSON file
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"` // directory for generated JSON documents
	SplitKits bool   `mapstructure:"split_kits" yaml:"split_kits"` // write one file per kit under kits/
	Pretty    bool   `mapstructure:"pretty" yaml:"pretty"`         // indent generated JSON
	Simple    bool   `mapstructure:"simple" yaml:"simple"`         // also write the flat all-lists document
}

// ValidateConfig controls the identifier validation passes.
type ValidateConfig struct {
	OntologyDir string `mapstructure:"ontology_dir" yaml:"ontology_dir"` // directory holding the ontology node tables
	ReportPath  string `mapstructure:"report_path" yaml:"report_path"`   // where to write the validation report ("" = stdout only)
	CacheDB     string `mapstructure:"cache_db" yaml:"cache_db"`         // sqlite file for cross-check verdicts
	SkipCache   bool   `mapstructure:"skip_cache" yaml:"skip_cache"`     // bypass cached verdicts and re-query services
}

// OracleConfig points the cross-checker at its upstream services.
// Base URLs are overridable for testing against local fixtures.
type OracleConfig struct {
	PubchemBaseURL string `mapstructure:"pubchem_base_url" yaml:"pubchem_base_url"`
	KeggBaseURL    string `mapstructure:"kegg_base_url" yaml:"kegg_base_url"`
}

// Config holds all configuration options for assay-metadata.
type Config struct {
	Extract  ExtractConfig  `mapstructure:"extract" yaml:"extract"`
	Validate ValidateConfig `mapstructure:"validate" yaml:"validate"`
	Oracle   OracleConfig   `mapstructure:"oracle" yaml:"oracle"`
	Tracing  tracing.Config `mapstructure:"tracing" yaml:"tracing"`
}

// Defaults returns the configuration used when no config file is present.
func Defaults() Config {
	return Config{
		Extract: ExtractConfig{
			Input:     "data/biolog_strain_data.json",
			OutputDir: "output",
			SplitKits: false,
			Pretty:    true,
			Simple:    false,
		},
		Validate: ValidateConfig{
			OntologyDir: "data/ontologies",
			ReportPath:  "",
			CacheDB:     ".assay-metadata/verdicts.db",
			SkipCache:   false,
		},
		Oracle: OracleConfig{
			PubchemBaseURL: "https://pubchem.ncbi.nlm.nih.gov/rest/pug",
			KeggBaseURL:    "https://rest.kegg.jp",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Validate checks the configuration for values that would fail later in
// less obvious ways.
func Validate(cfg Config) error {
	if cfg.Extract.OutputDir == "" {
		return fmt.Errorf("extract.output_dir must not be empty")
	}
	if cfg.Validate.OntologyDir == "" {
		return fmt.Errorf("validate.ontology_dir must not be empty")
	}
	if cfg.Tracing.SampleRate < 0 || cfg.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be between 0 and 1, got %g", cfg.Tracing.SampleRate)
	}
	switch cfg.Tracing.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter must be one of none, file, stdout, otlp, got %q", cfg.Tracing.Exporter)
	}
	if cfg.Tracing.Exporter == "file" && cfg.Tracing.FilePath == "" {
		return fmt.Errorf("tracing.file_path is required when tracing.exporter is file")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# assay-metadata configuration

extract:
  # Strain phenotype JSON file to read well codes from
  input: data/biolog_strain_data.json
  # Directory for generated metadata documents
  output_dir: output
  # Write one JSON file per kit under output/kits/
  split_kits: false
  # Indent generated JSON
  pretty: true
  # Also write the flat all-lists document (assay_kits_simple.json)
  simple: false

validate:
  # Directory holding chebi_nodes.tsv, go_nodes.tsv, ec_nodes.tsv
  ontology_dir: data/ontologies
  # Write the validation report to this path ("" = stdout only)
  report_path: ""
  # SQLite file caching cross-check verdicts
  cache_db: .assay-metadata/verdicts.db
  # Bypass cached verdicts and re-query remote services
  skip_cache: false

# oracle:
#   pubchem_base_url: https://pubchem.ncbi.nlm.nih.gov/rest/pug
#   kegg_base_url: https://rest.kegg.jp

# Tracing is off by default. Exporters: none, file, stdout, otlp
tracing:
  enabled: false
  exporter: none
  # file_path: .assay-metadata/traces.jsonl
  # otlp_endpoint: localhost:4317
  sample_rate: 1.0
`
}

// WriteDefaultConfig writes the default config template to the given path,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
