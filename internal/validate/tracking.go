package validate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/CultureBotAI/assay-metadata/internal/log"
)

// FileVersion pins one reference table to the exact bytes a validation
// run saw, so a report can be traced back to its inputs.
type FileVersion struct {
	Path         string `json:"path"`
	SHA256       string `json:"sha256"`
	SizeBytes    int64  `json:"size_bytes"`
	ModifiedUnix int64  `json:"modified_time"`
}

// TrackOntologyFiles hashes the three node tables under dir and writes
// the version metadata to metadataPath. Missing tables are skipped
// with a log line; the pass that needed them reports on its own.
func TrackOntologyFiles(dir, metadataPath string) (map[string]FileVersion, error) {
	versions := make(map[string]FileVersion)

	for _, name := range []string{ChebiNodesFile, ECNodesFile, GONodesFile} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			log.Warn(log.CatValidate, "reference table not tracked", "path", path)
			continue
		}

		sum, err := hashFile(path)
		if err != nil {
			return nil, err
		}
		versions[name] = FileVersion{
			Path:         path,
			SHA256:       sum,
			SizeBytes:    info.Size(),
			ModifiedUnix: info.ModTime().Unix(),
		}
	}

	raw, err := json.MarshalIndent(versions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal file versions: %w", err)
	}
	if err := os.WriteFile(metadataPath, raw, 0o644); err != nil {
		return nil, fmt.Errorf("write file versions: %w", err)
	}
	return versions, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the --ontology-dir flag
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
