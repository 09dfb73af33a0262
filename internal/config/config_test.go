package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValidate_Defaults(t *testing.T) {
	err := Validate(Defaults())
	require.NoError(t, err, "defaults should always validate")
}

func TestValidate_EmptyOutputDir(t *testing.T) {
	cfg := Defaults()
	cfg.Extract.OutputDir = ""
	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "output_dir")
}

func TestValidate_EmptyOntologyDir(t *testing.T) {
	cfg := Defaults()
	cfg.Validate.OntologyDir = ""
	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ontology_dir")
}

func TestValidate_SampleRateOutOfRange(t *testing.T) {
	cfg := Defaults()
	cfg.Tracing.SampleRate = 1.5
	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample_rate")
}

func TestValidate_UnknownExporter(t *testing.T) {
	cfg := Defaults()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "jaeger"
	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exporter")
}

func TestValidate_FileExporterRequiresPath(t *testing.T) {
	cfg := Defaults()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "file"
	cfg.Tracing.FilePath = ""
	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "file_path")
}

func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	var cfg Config
	err := yaml.Unmarshal([]byte(DefaultConfigTemplate()), &cfg)
	require.NoError(t, err)

	defaults := Defaults()
	require.Equal(t, defaults.Extract, cfg.Extract)
	require.Equal(t, defaults.Validate, cfg.Validate)
	require.Equal(t, defaults.Tracing.Enabled, cfg.Tracing.Enabled)
	require.Equal(t, defaults.Tracing.SampleRate, cfg.Tracing.SampleRate)
}

func TestWriteDefaultConfig_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".assay-metadata", "config.yaml")

	err := WriteDefaultConfig(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
