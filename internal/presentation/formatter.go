package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CultureBotAI/assay-metadata/internal/aggregate"
	"github.com/CultureBotAI/assay-metadata/internal/log"
)

// Formatter writes output documents as JSON
type Formatter struct {
	writer io.Writer
	pretty bool
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, pretty bool) *Formatter {
	return &Formatter{
		writer: writer,
		pretty: pretty,
	}
}

// Format encodes any output document as JSON
func (f *Formatter) Format(doc any) error {
	encoder := json.NewEncoder(f.writer)
	if f.pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(doc)
}

// OutputWriter writes the extraction output file set into a directory.
type OutputWriter struct {
	dir    string
	pretty bool
}

// NewOutputWriter creates the output directory if needed.
func NewOutputWriter(dir string, pretty bool) (*OutputWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &OutputWriter{dir: dir, pretty: pretty}, nil
}

// WriteAll writes the consolidated document, the kit summary, and the
// statistics file; per-kit files and the simplified document are
// written when requested.
func (w *OutputWriter) WriteAll(result *aggregate.Result, splitKits, simple bool) error {
	if err := w.writeFile("assay_metadata.json", FromResult(result), w.pretty); err != nil {
		return err
	}
	if err := w.writeFile("api_kits_list.json", KitList(result), w.pretty); err != nil {
		return err
	}
	// Statistics are always indented; the file exists to be read by
	// operators.
	if err := w.writeFile("statistics.json", result.Statistics, true); err != nil {
		return err
	}

	if splitKits {
		if err := w.writeKitFiles(result); err != nil {
			return err
		}
	}
	if simple {
		if err := w.writeFile("assay_kits_simple.json", Simplified(result), w.pretty); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes a validation report to path.
func (w *OutputWriter) WriteReport(name string, report ReportDTO) error {
	return w.writeFile(name, report, true)
}

func (w *OutputWriter) writeKitFiles(result *aggregate.Result) error {
	kitsDir := filepath.Join(w.dir, "kits")
	if err := os.MkdirAll(kitsDir, 0o755); err != nil {
		return fmt.Errorf("create kits dir: %w", err)
	}
	for _, kit := range result.Kits {
		name := filepath.Join("kits", safeKitFilename(string(kit.Name))+".json")
		if err := w.writeFile(name, KitFile(result, kit), w.pretty); err != nil {
			return err
		}
	}
	return nil
}

func (w *OutputWriter) writeFile(name string, doc any, pretty bool) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path) //nolint:gosec // G304: path is rooted in the --output-dir flag
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := NewFormatter(f, pretty).Format(doc); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	log.Debug(log.CatAggregate, "wrote output file", "path", path)
	return nil
}

// safeKitFilename turns a kit name into a filesystem-safe stem.
func safeKitFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "/", "-")
}
